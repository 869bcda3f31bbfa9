package analytics

import "strings"

// Sentiment is the closed set of sentiment labels used by the activity log.
// SentimentUnknown covers blank or unrecognized labels; it is counted as neutral.
type Sentiment int

const (
	SentimentUnknown Sentiment = iota
	SentimentPositive
	SentimentMixed
	SentimentNeutral
	SentimentNegative
)

// ParseSentiment classifies a raw label case-insensitively.
func ParseSentiment(label string) Sentiment {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "positivo":
		return SentimentPositive
	case "misto":
		return SentimentMixed
	case "neutro":
		return SentimentNeutral
	case "negativo":
		return SentimentNegative
	default:
		return SentimentUnknown
	}
}

func (s Sentiment) String() string {
	switch s {
	case SentimentPositive:
		return "positivo"
	case SentimentMixed:
		return "misto"
	case SentimentNeutral:
		return "neutro"
	case SentimentNegative:
		return "negativo"
	default:
		return "desconhecido"
	}
}

// Counted returns the category the sentiment is tallied under.
func (s Sentiment) Counted() Sentiment {
	if s == SentimentUnknown {
		return SentimentNeutral
	}
	return s
}

// Weight is the contribution of one record to the health score.
func (s Sentiment) Weight() int {
	switch s.Counted() {
	case SentimentPositive:
		return 3
	case SentimentMixed:
		return 1
	case SentimentNegative:
		return -5
	default:
		return 0
	}
}

// SentimentCounts tallies records per sentiment category.
type SentimentCounts struct {
	Positivo int `json:"positivo"`
	Misto    int `json:"misto"`
	Neutro   int `json:"neutro"`
	Negativo int `json:"negativo"`
}

func (c *SentimentCounts) Add(s Sentiment) {
	switch s.Counted() {
	case SentimentPositive:
		c.Positivo++
	case SentimentMixed:
		c.Misto++
	case SentimentNegative:
		c.Negativo++
	default:
		c.Neutro++
	}
}

func (c SentimentCounts) Sum() int {
	return c.Positivo + c.Misto + c.Neutro + c.Negativo
}

// Score applies the weighted health formula and rounds to two decimals.
// An empty tally scores zero.
func (c SentimentCounts) Score() float64 {
	total := c.Sum()
	if total == 0 {
		return 0
	}
	weighted := c.Positivo*SentimentPositive.Weight() +
		c.Misto*SentimentMixed.Weight() +
		c.Neutro*SentimentNeutral.Weight() +
		c.Negativo*SentimentNegative.Weight()
	return round2(float64(weighted) / float64(total))
}
