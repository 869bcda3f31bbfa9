package analytics

type DateRange struct {
	Start string `json:"inicio"`
	End   string `json:"fim"`
}

// GeneralStats are the headline totals for a set of records.
type GeneralStats struct {
	TotalRecords    int             `json:"totalRegistros"`
	TotalGroups     int             `json:"totalGrupos"`
	TotalMembers    int             `json:"totalMembros"`
	AvgParticipants float64         `json:"mediaParticipantes"`
	Sentiments      SentimentCounts `json:"distribuicaoSentimentos"`
	Period          DateRange       `json:"periodo"`
}

// ComputeGeneralStats aggregates totals over all records. The participant average
// divides by the record count, not by the number of distinct days. Records with
// an unparseable date still count but do not widen the period.
func ComputeGeneralStats(records []NormalizedRecord) GeneralStats {
	var stats GeneralStats
	groups := make(map[string]struct{})
	members := make(map[string]struct{})
	participants := 0

	for _, r := range records {
		stats.TotalRecords++
		groups[r.GroupName] = struct{}{}
		for _, name := range r.Participants {
			members[name] = struct{}{}
		}
		participants += len(r.Participants)
		stats.Sentiments.Add(r.Sentiment)

		if !r.HasDate {
			continue
		}
		if stats.Period.Start == "" || r.ActivityDate < stats.Period.Start {
			stats.Period.Start = r.ActivityDate
		}
		if r.ActivityDate > stats.Period.End {
			stats.Period.End = r.ActivityDate
		}
	}

	stats.TotalGroups = len(groups)
	stats.TotalMembers = len(members)
	if stats.TotalRecords > 0 {
		stats.AvgParticipants = float64(participants) / float64(stats.TotalRecords)
	}
	return stats
}
