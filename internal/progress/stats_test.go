package progress

import (
	"math"
	"testing"
	"time"

	"github.com/abhisek/studyplan/internal/planner"
)

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		name   string
		blocks []planner.StudyBlock
		want   float64
	}{
		{"empty", nil, 0},
		{
			"half done",
			[]planner.StudyBlock{{Completed: true}, {Completed: false}},
			50,
		},
		{
			"all done",
			[]planner.StudyBlock{{Completed: true}, {Completed: true}},
			100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompletionRate(tt.blocks)
			if got != tt.want {
				t.Errorf("CompletionRate() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestComputeStats(t *testing.T) {
	now := time.Date(2026, time.March, 10, 20, 0, 0, 0, time.UTC)

	logs := []DailyLog{
		{Date: "2026-03-10", TotalMinutes: 90, Sessions: 2},
		{Date: "2026-03-09", TotalMinutes: 60, Sessions: 1},
		{Date: "2026-03-07", TotalMinutes: 30, Sessions: 1},
	}

	plan := &planner.StudyPlan{
		WeeklySchedules: []planner.WeeklySchedule{{
			StudyBlocks: []planner.StudyBlock{
				{Completed: true}, {Completed: true}, {Completed: false}, {Completed: false},
			},
		}},
	}

	stats := ComputeStats(logs, plan, now)

	if stats.TotalHoursStudied != 3 {
		t.Errorf("TotalHoursStudied = %f, want 3", stats.TotalHoursStudied)
	}
	if stats.CurrentStreak != 2 {
		t.Errorf("CurrentStreak = %d, want 2", stats.CurrentStreak)
	}
	if stats.LongestStreak != 2 {
		t.Errorf("LongestStreak = %d, want 2", stats.LongestStreak)
	}
	if stats.AverageSessionMin != 45 {
		t.Errorf("AverageSessionMin = %f, want 45", stats.AverageSessionMin)
	}
	if stats.CompletionRate != 50 {
		t.Errorf("CompletionRate = %f, want 50", stats.CompletionRate)
	}
	// Under a week of logs counts as one week.
	if math.Abs(stats.WeeklyAverageMin-180) > 1e-9 {
		t.Errorf("WeeklyAverageMin = %f, want 180", stats.WeeklyAverageMin)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	now := time.Date(2026, time.March, 10, 20, 0, 0, 0, time.UTC)

	stats := ComputeStats(nil, nil, now)

	if stats.TotalHoursStudied != 0 || stats.CurrentStreak != 0 ||
		stats.AverageSessionMin != 0 || stats.WeeklyAverageMin != 0 ||
		stats.CompletionRate != 0 {
		t.Errorf("empty stats = %+v", stats)
	}
}

func TestComputeStatsFullWeeks(t *testing.T) {
	now := time.Date(2026, time.March, 20, 20, 0, 0, 0, time.UTC)

	var logs []DailyLog
	for i := 0; i < 14; i++ {
		logs = append(logs, DailyLog{
			Date:         now.AddDate(0, 0, -i).Format(DateFormat),
			TotalMinutes: 60,
			Sessions:     1,
		})
	}

	stats := ComputeStats(logs, nil, now)

	if math.Abs(stats.WeeklyAverageMin-420) > 1e-9 {
		t.Errorf("WeeklyAverageMin = %f, want 420", stats.WeeklyAverageMin)
	}
	if stats.CurrentStreak != 14 {
		t.Errorf("CurrentStreak = %d, want 14", stats.CurrentStreak)
	}
}
