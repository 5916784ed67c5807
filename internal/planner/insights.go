package planner

import "fmt"

// studyTips is the curated tip list used when no external generator
// supplies its own.
var studyTips = []string{
	"Start each session with a 5-minute review of previous material",
	"Use the Pomodoro technique: 25 minutes focus, 5 minutes break",
	"Create summary notes at the end of each study session",
	"Test yourself regularly with practice questions",
	"Explain concepts aloud to reinforce understanding",
	"Mix different subjects to prevent mental fatigue",
	"Review difficult topics at the beginning of sessions when fresh",
}

// weeklyGoals produces the goal list for one week. The first week
// establishes routine, the final two weeks shift to revision, and every
// week keeps the daily-schedule goal.
func weeklyGoals(weekIdx, totalWeeks int, ranked []Subject) []string {
	var goals []string

	switch {
	case weekIdx == 0:
		goals = append(goals,
			"Establish consistent study routine",
			"Complete initial assessment of all subjects")
	case weekIdx >= totalWeeks-2:
		goals = append(goals,
			"Focus on revision and practice tests",
			"Review and strengthen weak areas")
	default:
		top := "priority subjects"
		if len(ranked) > 0 {
			top = ranked[0].Name
		}
		goals = append(goals,
			fmt.Sprintf("Master core concepts in %s", top),
			"Complete all practice exercises")
	}

	goals = append(goals, "Maintain daily study schedule")
	return goals
}

// buildInsights synthesizes the narrative bundle for a generated plan.
func buildInsights(ranked []Subject, prefs Preferences, totalWeeks int) Insights {
	highPriority := 0
	lowConfidence := 0
	for _, s := range ranked {
		if s.Priority == PriorityCritical || s.Priority == PriorityHigh {
			highPriority++
		}
		if confidence(s) <= 2 {
			lowConfidence++
		}
	}

	return Insights{
		PriorityReasoning: fmt.Sprintf(
			"Prioritized %d high-priority subjects and %d low-confidence areas. "+
				"More study time allocated to subjects needing improvement while "+
				"maintaining regular practice for stronger subjects.",
			highPriority, lowConfidence),
		StudyTips: studyTips,
		PotentialChallenges: []string{
			fmt.Sprintf("Maintaining consistency over %d weeks", totalWeeks),
			fmt.Sprintf("Balancing %d different subjects effectively", len(ranked)),
			"Avoiding procrastination on challenging topics",
			"Managing energy levels during long study sessions",
			"Adapting to unexpected schedule changes",
		},
		BalancingStrategy: fmt.Sprintf(
			"Distributed %d subjects across %d study days, with %d hours daily. "+
				"Higher priority and lower confidence subjects receive more frequent "+
				"sessions. Mix of learning, practice, and revision maintains engagement.",
			len(ranked), prefs.StudyDaysPerWeek, prefs.DailyStudyHours),
	}
}
