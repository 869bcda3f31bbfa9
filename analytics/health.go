package analytics

import (
	"cmp"
	"slices"
	"strings"
)

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

const (
	trendWindow     = 3
	trendMinRecords = 2 * trendWindow
)

// GroupHealth is the health score and recent trend of one group.
type GroupHealth struct {
	GroupName    string  `json:"grupo"`
	Score        float64 `json:"score"`
	TotalRecords int     `json:"totalRegistros"`
	SentimentCounts
	Trend         Trend  `json:"tendencia"`
	LastSentiment string `json:"ultimoSentimento"`
}

// ScoreGroups computes one GroupHealth per group name, best score first.
// Groups with equal scores are ordered by name.
func ScoreGroups(records []NormalizedRecord) []GroupHealth {
	var names []string
	byGroup := make(map[string][]NormalizedRecord)
	for _, r := range records {
		if _, ok := byGroup[r.GroupName]; !ok {
			names = append(names, r.GroupName)
		}
		byGroup[r.GroupName] = append(byGroup[r.GroupName], r)
	}

	health := make([]GroupHealth, 0, len(names))
	for _, name := range names {
		health = append(health, scoreGroup(name, byGroup[name]))
	}

	slices.SortStableFunc(health, func(a, b GroupHealth) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return strings.Compare(a.GroupName, b.GroupName)
	})
	return health
}

func scoreGroup(name string, records []NormalizedRecord) GroupHealth {
	g := GroupHealth{
		GroupName:     name,
		TotalRecords:  len(records),
		Trend:         TrendStable,
		LastSentiment: SentimentNeutral.String(),
	}
	for _, r := range records {
		g.SentimentCounts.Add(r.Sentiment)
	}
	g.Score = g.SentimentCounts.Score()

	recent := SortByDateDesc(records)
	g.Trend = ClassifyTrend(recent)
	if len(recent) > 0 {
		g.LastSentiment = recent[0].DisplaySentiment()
	}
	return g
}

// ClassifyTrend compares positive records in the three most recent entries
// against the three before them. Fewer than six records is always stable.
// records must already be ordered most recent first.
func ClassifyTrend(records []NormalizedRecord) Trend {
	if len(records) < trendMinRecords {
		return TrendStable
	}
	recent := countPositive(records[:trendWindow])
	prior := countPositive(records[trendWindow:trendMinRecords])
	switch {
	case recent > prior:
		return TrendUp
	case recent < prior:
		return TrendDown
	default:
		return TrendStable
	}
}

func countPositive(records []NormalizedRecord) int {
	n := 0
	for _, r := range records {
		if r.Sentiment == SentimentPositive {
			n++
		}
	}
	return n
}

// SortByDateDesc returns a copy ordered by activity date, most recent first.
// Records sharing a date keep their relative order.
func SortByDateDesc(records []NormalizedRecord) []NormalizedRecord {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b NormalizedRecord) int {
		return strings.Compare(b.ActivityDate, a.ActivityDate)
	})
	return sorted
}
