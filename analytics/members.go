package analytics

import (
	"slices"
	"sort"
)

type MemberRanking struct {
	Name           string   `json:"nome"`
	Participations int      `json:"participacoes"`
	Groups         []string `json:"grupos"`
}

// RankMembers counts, for every member, the records they appear in and the groups
// they were seen in. Ordered by participations descending; ties keep first-seen order.
func RankMembers(records []NormalizedRecord) []MemberRanking {
	var order []string
	counts := make(map[string]int)
	groups := make(map[string]map[string]struct{})

	for _, r := range records {
		for _, name := range r.Participants {
			if _, ok := counts[name]; !ok {
				order = append(order, name)
				groups[name] = make(map[string]struct{})
			}
			counts[name]++
			groups[name][r.GroupName] = struct{}{}
		}
	}

	ranking := make([]MemberRanking, 0, len(order))
	for _, name := range order {
		memberGroups := make([]string, 0, len(groups[name]))
		for g := range groups[name] {
			memberGroups = append(memberGroups, g)
		}
		sort.Strings(memberGroups)
		ranking = append(ranking, MemberRanking{
			Name:           name,
			Participations: counts[name],
			Groups:         memberGroups,
		})
	}

	slices.SortStableFunc(ranking, func(a, b MemberRanking) int {
		return b.Participations - a.Participations
	})
	return ranking
}
