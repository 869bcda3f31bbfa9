package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"group-analytics/models"
)

func rec(group, date, sentiment, participants string) models.GroupActivityRecord {
	return models.GroupActivityRecord{
		GroupName:       group,
		ActivityDate:    date,
		Sentiment:       sentiment,
		ParticipantsRaw: strPtr(participants),
	}
}

func TestScoreGroups_Formula(t *testing.T) {
	t.Parallel()

	health := ScoreGroups(NormalizeAll([]models.GroupActivityRecord{
		rec("G", "2024-01-01", "positivo", ""),
		rec("G", "2024-01-02", "positivo", ""),
		rec("G", "2024-01-03", "negativo", ""),
	}))
	require.Len(t, health, 1)
	g := health[0]
	assert.Equal(t, 0.33, g.Score)
	assert.Equal(t, 3, g.TotalRecords)
	assert.Equal(t, 2, g.Positivo)
	assert.Equal(t, 1, g.Negativo)
	assert.Equal(t, "negativo", g.LastSentiment)
	assert.Equal(t, TrendStable, g.Trend)
}

func TestScoreGroups_UnknownSentimentScoresAsNeutral(t *testing.T) {
	t.Parallel()

	health := ScoreGroups(NormalizeAll([]models.GroupActivityRecord{
		rec("G", "2024-01-01", "positivo", ""),
		rec("G", "2024-01-02", "???", ""),
	}))
	require.Len(t, health, 1)
	assert.Equal(t, 1.5, health[0].Score)
	assert.Equal(t, 1, health[0].Neutro)
	assert.Equal(t, "???", health[0].LastSentiment)
}

func TestScoreGroups_RankedByScoreThenName(t *testing.T) {
	t.Parallel()

	health := ScoreGroups(NormalizeAll([]models.GroupActivityRecord{
		rec("Beta", "2024-01-01", "neutro", ""),
		rec("Gama", "2024-01-01", "negativo", ""),
		rec("Alfa", "2024-01-01", "neutro", ""),
		rec("Delta", "2024-01-01", "positivo", ""),
	}))
	names := make([]string, 0, len(health))
	for _, g := range health {
		names = append(names, g.GroupName)
	}
	assert.Equal(t, []string{"Delta", "Alfa", "Beta", "Gama"}, names)
	assert.Equal(t, -5.0, health[3].Score)
}

func TestScoreGroups_LastSentimentDefaultsToNeutral(t *testing.T) {
	t.Parallel()

	health := ScoreGroups(NormalizeAll([]models.GroupActivityRecord{
		rec("G", "2024-01-05", "", ""),
		rec("G", "2024-01-01", "positivo", ""),
	}))
	require.Len(t, health, 1)
	assert.Equal(t, "neutro", health[0].LastSentiment)
}

func TestClassifyTrend(t *testing.T) {
	t.Parallel()

	days := []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05", "2024-01-06"}
	build := func(sentiments ...string) []NormalizedRecord {
		var raw []models.GroupActivityRecord
		for i, s := range sentiments {
			raw = append(raw, rec("G", days[i], s, ""))
		}
		return SortByDateDesc(NormalizeAll(raw))
	}

	// Oldest first: the last three entries are the most recent ones.
	tests := []struct {
		name       string
		sentiments []string
		want       Trend
	}{
		{"five records gate", []string{"negativo", "negativo", "positivo", "positivo", "positivo"}, TrendStable},
		{"up", []string{"negativo", "negativo", "negativo", "positivo", "positivo", "positivo"}, TrendUp},
		{"down", []string{"positivo", "positivo", "neutro", "positivo", "misto", "negativo"}, TrendDown},
		{"equal", []string{"positivo", "neutro", "neutro", "neutro", "positivo", "misto"}, TrendStable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyTrend(build(tt.sentiments...)))
		})
	}
}

func TestClassifyTrend_OnlyFirstSixCount(t *testing.T) {
	t.Parallel()

	var raw []models.GroupActivityRecord
	// Eight records, newest first: two windows of positives then older negatives.
	for i, s := range []string{"positivo", "positivo", "neutro", "positivo", "neutro", "neutro", "negativo", "negativo"} {
		raw = append(raw, rec("G", []string{
			"2024-02-08", "2024-02-07", "2024-02-06", "2024-02-05",
			"2024-02-04", "2024-02-03", "2024-02-02", "2024-02-01",
		}[i], s, ""))
	}
	health := ScoreGroups(NormalizeAll(raw))
	require.Len(t, health, 1)
	assert.Equal(t, TrendUp, health[0].Trend)
}
