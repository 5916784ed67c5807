package planner

import "sort"

// priorityRanks orders tiers for ranking: lower rank sorts earlier.
var priorityRanks = map[Priority]int{
	PriorityCritical: 0,
	PriorityHigh:     1,
	PriorityMedium:   2,
	PriorityLow:      3,
}

// priorityRank maps a tier to its sort rank. Unknown or missing tiers
// default to medium.
func priorityRank(p Priority) int {
	if r, ok := priorityRanks[p]; ok {
		return r
	}
	return priorityRanks[PriorityMedium]
}

// confidence returns a subject's confidence level, defaulting to 3 when
// unset or out of the 1-5 range.
func confidence(s Subject) int {
	if s.ConfidenceLevel < 1 || s.ConfidenceLevel > 5 {
		return 3
	}
	return s.ConfidenceLevel
}

// Rank orders subjects by urgency: priority tier first (critical before
// low), then confidence ascending (weaker subjects earlier). The sort is
// stable, so exact ties keep their input order. The input is not modified.
func Rank(subjects []Subject) []Subject {
	ranked := make([]Subject, len(subjects))
	copy(ranked, subjects)

	sort.SliceStable(ranked, func(i, j int) bool {
		pi, pj := priorityRank(ranked[i].Priority), priorityRank(ranked[j].Priority)
		if pi != pj {
			return pi < pj
		}
		return confidence(ranked[i]) < confidence(ranked[j])
	})

	return ranked
}
