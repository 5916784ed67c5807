package progress

import (
	"time"

	"github.com/abhisek/studyplan/internal/planner"
)

// Stats summarizes logged activity and plan completion.
type Stats struct {
	TotalHoursStudied float64 `json:"totalHoursStudied"`
	CurrentStreak     int     `json:"currentStreak"`
	LongestStreak     int     `json:"longestStreak"`
	AverageSessionMin float64 `json:"averageSessionLength"`
	CompletionRate    float64 `json:"completionRate"`
	WeeklyAverageMin  float64 `json:"weeklyAverage"`
}

// CompletionRate is the percentage of completed blocks over the given
// set. Empty input yields 0.
func CompletionRate(blocks []planner.StudyBlock) float64 {
	if len(blocks) == 0 {
		return 0
	}
	completed := 0
	for _, b := range blocks {
		if b.Completed {
			completed++
		}
	}
	return float64(completed) / float64(len(blocks)) * 100
}

// allBlocks flattens a plan's weekly schedules.
func allBlocks(plan *planner.StudyPlan) []planner.StudyBlock {
	var blocks []planner.StudyBlock
	for _, w := range plan.WeeklySchedules {
		blocks = append(blocks, w.StudyBlocks...)
	}
	return blocks
}

// ComputeStats derives the full stats bundle from the log and the plan.
// Pure over its inputs and the supplied clock, so two invocations on
// different days can legitimately differ.
func ComputeStats(logs []DailyLog, plan *planner.StudyPlan, now time.Time) Stats {
	totalMinutes := 0
	sessions := 0
	for _, l := range logs {
		totalMinutes += l.TotalMinutes
		sessions += l.Sessions
	}

	stats := Stats{
		TotalHoursStudied: float64(totalMinutes) / 60,
		CurrentStreak:     Streak(logs, now),
		LongestStreak:     LongestStreak(logs),
	}
	if sessions > 0 {
		stats.AverageSessionMin = float64(totalMinutes) / float64(sessions)
	}
	if len(logs) > 0 {
		weeks := float64(len(logs)) / 7
		if weeks < 1 {
			weeks = 1
		}
		stats.WeeklyAverageMin = float64(totalMinutes) / weeks
	}
	if plan != nil {
		stats.CompletionRate = CompletionRate(allBlocks(plan))
	}
	return stats
}
