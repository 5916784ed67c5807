package progress

import (
	"testing"
	"time"
)

func logsOn(dates ...string) []DailyLog {
	logs := make([]DailyLog, len(dates))
	for i, d := range dates {
		logs[i] = DailyLog{Date: d, TotalMinutes: 60, Sessions: 1}
	}
	return logs
}

func TestStreak(t *testing.T) {
	now := time.Date(2026, time.March, 10, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		logs []DailyLog
		want int
	}{
		{"no logs", nil, 0},
		{"only today", logsOn("2026-03-10"), 1},
		{"three consecutive days", logsOn("2026-03-10", "2026-03-09", "2026-03-08"), 3},
		{"unsorted input", logsOn("2026-03-08", "2026-03-10", "2026-03-09"), 3},
		{"gap breaks the run", logsOn("2026-03-10", "2026-03-09", "2026-03-07"), 2},
		{"nothing today breaks immediately", logsOn("2026-03-09", "2026-03-08"), 0},
		{"long past streak does not count", logsOn("2026-02-01", "2026-01-31", "2026-01-30"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Streak(tt.logs, now)
			if got != tt.want {
				t.Errorf("Streak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLongestStreak(t *testing.T) {
	tests := []struct {
		name string
		logs []DailyLog
		want int
	}{
		{"no logs", nil, 0},
		{"single day", logsOn("2026-03-01"), 1},
		{"current run is longest", logsOn("2026-03-10", "2026-03-09", "2026-03-08", "2026-03-01"), 3},
		{
			"past run beats current",
			logsOn("2026-03-10", "2026-03-05", "2026-03-04", "2026-03-03", "2026-03-02"),
			4,
		},
		{"month boundary", logsOn("2026-03-01", "2026-02-28", "2026-02-27"), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LongestStreak(tt.logs)
			if got != tt.want {
				t.Errorf("LongestStreak() = %d, want %d", got, tt.want)
			}
		})
	}
}
