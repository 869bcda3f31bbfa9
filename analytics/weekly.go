package analytics

import (
	"sort"
	"time"
)

type WeeklySentiment struct {
	WeekStart string `json:"semana"`
	SentimentCounts
	Total int `json:"total"`
}

// WeekStart returns the Sunday on or before d.
func WeekStart(d time.Time) time.Time {
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// WeeklyTrend buckets records into Sunday-starting weeks in chronological order.
// Records without a parseable date are left out.
func WeeklyTrend(records []NormalizedRecord) []WeeklySentiment {
	buckets := make(map[string]*WeeklySentiment)
	for _, r := range records {
		if !r.HasDate {
			continue
		}
		key := WeekStart(r.Date).Format(dateLayout)
		b, ok := buckets[key]
		if !ok {
			b = &WeeklySentiment{WeekStart: key}
			buckets[key] = b
		}
		b.Add(r.Sentiment)
		b.Total++
	}

	weeks := make([]WeeklySentiment, 0, len(buckets))
	for _, b := range buckets {
		weeks = append(weeks, *b)
	}
	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].WeekStart < weeks[j].WeekStart
	})
	return weeks
}
