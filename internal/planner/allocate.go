package planner

// priorityWeights is the fixed urgency scale used for time weighting.
var priorityWeights = map[Priority]float64{
	PriorityCritical: 4,
	PriorityHigh:     3,
	PriorityMedium:   2,
	PriorityLow:      1,
}

// priorityWeight maps a tier to its weight, defaulting to medium.
func priorityWeight(p Priority) float64 {
	if w, ok := priorityWeights[p]; ok {
		return w
	}
	return priorityWeights[PriorityMedium]
}

// confidenceWeight gives weaker subjects more weight: 6 - confidence,
// so confidence 1 weighs 5 and confidence 5 weighs 1.
func confidenceWeight(s Subject) float64 {
	return float64(6 - confidence(s))
}

// subjectWeight is the combined urgency/weakness weight of a subject.
func subjectWeight(s Subject) float64 {
	return confidenceWeight(s) * priorityWeight(s.Priority)
}

// DistributeHours splits a pool of available hours across subjects in
// proportion to their weights. Shares sum to totalAvailableHours; equal
// weights yield a uniform split; a single subject takes the whole pool.
//
// The result is advisory: session synthesis places concrete blocks by
// ranked greedy walk, not by consuming these shares hour for hour, but
// both honor the same intent: more time to higher-weight subjects.
func DistributeHours(subjects []Subject, totalAvailableHours float64) map[string]float64 {
	distribution := make(map[string]float64, len(subjects))
	if len(subjects) == 0 {
		return distribution
	}

	var totalWeight float64
	for _, s := range subjects {
		totalWeight += subjectWeight(s)
	}

	for _, s := range subjects {
		distribution[s.ID] = subjectWeight(s) / totalWeight * totalAvailableHours
	}
	return distribution
}

// EstimateWorkload sums topic time estimates across subjects, scaled up
// for weaker and more urgent subjects. Returns hours.
func EstimateWorkload(subjects []Subject) float64 {
	var total float64
	for _, s := range subjects {
		confidenceMult := confidenceWeight(s) * 0.5

		var priorityMult float64
		switch s.Priority {
		case PriorityCritical:
			priorityMult = 2
		case PriorityHigh:
			priorityMult = 1.5
		case PriorityMedium:
			priorityMult = 1
		default:
			priorityMult = 0.8
		}

		var topicHours float64
		for _, t := range s.Topics {
			topicHours += float64(t.TimeEstimate) / 60
		}

		total += topicHours * confidenceMult * priorityMult
	}
	return total
}
