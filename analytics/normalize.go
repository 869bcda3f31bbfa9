package analytics

import (
	"math"
	"strings"
	"time"

	"group-analytics/models"
)

const dateLayout = "2006-01-02"

// Phrases that mark a complaint field as "nothing to report".
var complaintNegations = []string{
	"nenhuma",
	"não foram identificad",
	"nao foram identificad",
}

// NormalizedRecord is a GroupActivityRecord with its derived fields resolved.
type NormalizedRecord struct {
	GroupName    string
	ActivityDate string
	Date         time.Time
	HasDate      bool
	Participants []string
	Sentiment    Sentiment
	// SentimentLabel is the trimmed, lower-cased label kept for display.
	SentimentLabel string
	// RawSentiment is the label exactly as stored.
	RawSentiment  string
	ComplaintText string
	HasComplaint  bool
}

// DisplaySentiment is the label shown to users: trimmed and lower-cased, or
// "neutro" when the record has none.
func (n NormalizedRecord) DisplaySentiment() string {
	if n.SentimentLabel == "" {
		return SentimentNeutral.String()
	}
	return n.SentimentLabel
}

// NormalizeParticipants splits a comma separated list into trimmed, non-empty,
// de-duplicated names in first-seen order. Matching is exact, so "Ana" and
// "ana" are different members.
func NormalizeParticipants(raw string) []string {
	names := make([]string, 0)
	seen := make(map[string]struct{})
	for _, token := range strings.Split(raw, ",") {
		name := strings.TrimSpace(token)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// HasComplaint reports whether complaint text carries an actual complaint.
func HasComplaint(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	lower := strings.ToLower(trimmed)
	for _, phrase := range complaintNegations {
		if strings.Contains(lower, phrase) {
			return false
		}
	}
	return true
}

// Normalize resolves a raw record. It never fails: missing fields become empty values.
func Normalize(r models.GroupActivityRecord) NormalizedRecord {
	n := NormalizedRecord{
		GroupName:      strings.TrimSpace(r.GroupName),
		ActivityDate:   strings.TrimSpace(r.ActivityDate),
		Participants:   NormalizeParticipants(deref(r.ParticipantsRaw)),
		Sentiment:      ParseSentiment(r.Sentiment),
		SentimentLabel: strings.ToLower(strings.TrimSpace(r.Sentiment)),
		RawSentiment:   r.Sentiment,
		ComplaintText:  strings.TrimSpace(deref(r.ComplaintText)),
	}
	n.HasComplaint = HasComplaint(n.ComplaintText)

	// Accept full timestamps by keeping only the calendar day.
	if len(n.ActivityDate) >= len(dateLayout) {
		if d, err := time.Parse(dateLayout, n.ActivityDate[:len(dateLayout)]); err == nil {
			n.Date = d
			n.HasDate = true
			n.ActivityDate = d.Format(dateLayout)
		}
	}
	return n
}

// NormalizeAll normalizes every record, preserving order.
func NormalizeAll(records []models.GroupActivityRecord) []NormalizedRecord {
	out := make([]NormalizedRecord, 0, len(records))
	for _, r := range records {
		out = append(out, Normalize(r))
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
