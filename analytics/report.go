// Package analytics derives dashboard read-models from the group activity log.
//
// Every function here is pure: it reads the records it is given and builds its
// result from local state only, so aggregators can run in any order or in parallel.
package analytics

import "group-analytics/models"

type Options struct {
	HubPrefix string
}

func DefaultOptions() Options {
	return Options{HubPrefix: DefaultHubPrefix}
}

// Report bundles every read-model computed from one set of records.
type Report struct {
	Stats      GeneralStats      `json:"estatisticas"`
	Members    []MemberRanking   `json:"membros"`
	Groups     []GroupHealth     `json:"grupos"`
	Complaints []Complaint       `json:"reclamacoes"`
	Hubs       []HubComparison   `json:"hubs"`
	Weekly     []WeeklySentiment `json:"semanal"`
}

// Analyze normalizes the records once and runs every aggregator over them.
func Analyze(records []models.GroupActivityRecord, opts Options) Report {
	normalized := NormalizeAll(records)
	return Report{
		Stats:      ComputeGeneralStats(normalized),
		Members:    RankMembers(normalized),
		Groups:     ScoreGroups(normalized),
		Complaints: ExtractComplaints(normalized),
		Hubs:       CompareHubs(normalized, opts.HubPrefix),
		Weekly:     WeeklyTrend(normalized),
	}
}
