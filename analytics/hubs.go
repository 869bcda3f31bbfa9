package analytics

import (
	"cmp"
	"math"
	"slices"
	"strings"
)

// DefaultHubPrefix marks group names that belong to a regional hub, e.g.
// "Hub Nordeste" is the group of hub "Nordeste".
const DefaultHubPrefix = "Hub "

type HubComparison struct {
	Hub           string  `json:"hub"`
	Records       int     `json:"totalRegistros"`
	PositiveRate  int     `json:"taxaPositiva"`
	Score         float64 `json:"score"`
	UniqueMembers int     `json:"membrosUnicos"`
}

// HubLabel strips prefix from a group name. ok is false when the name does not
// follow the hub convention, when prefix is empty, or when nothing is left.
func HubLabel(groupName, prefix string) (label string, ok bool) {
	if prefix == "" || !strings.HasPrefix(groupName, prefix) {
		return "", false
	}
	label = strings.TrimSpace(strings.TrimPrefix(groupName, prefix))
	return label, label != ""
}

type hubAccumulator struct {
	counts  SentimentCounts
	members map[string]struct{}
}

// CompareHubs aggregates hub groups by label, best score first. Hubs without
// records are absent.
func CompareHubs(records []NormalizedRecord, prefix string) []HubComparison {
	var labels []string
	hubs := make(map[string]*hubAccumulator)
	for _, r := range records {
		label, ok := HubLabel(r.GroupName, prefix)
		if !ok {
			continue
		}
		acc, found := hubs[label]
		if !found {
			acc = &hubAccumulator{members: make(map[string]struct{})}
			hubs[label] = acc
			labels = append(labels, label)
		}
		acc.counts.Add(r.Sentiment)
		for _, name := range r.Participants {
			acc.members[name] = struct{}{}
		}
	}

	comparison := make([]HubComparison, 0, len(labels))
	for _, label := range labels {
		acc := hubs[label]
		total := acc.counts.Sum()
		comparison = append(comparison, HubComparison{
			Hub:           label,
			Records:       total,
			PositiveRate:  int(math.Round(float64(acc.counts.Positivo) / float64(total) * 100)),
			Score:         acc.counts.Score(),
			UniqueMembers: len(acc.members),
		})
	}

	slices.SortStableFunc(comparison, func(a, b HubComparison) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return strings.Compare(a.Hub, b.Hub)
	})
	return comparison
}
