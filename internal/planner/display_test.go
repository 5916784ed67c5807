package planner

import (
	"testing"
	"time"
)

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h"},
		{90, "1h 30m"},
		{150, "2h 30m"},
		{180, "3h"},
	}

	for _, tt := range tests {
		got := FormatMinutes(tt.minutes)
		if got != tt.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestRelativeDate(t *testing.T) {
	now := time.Date(2026, time.March, 4, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"today", date(2026, time.March, 4), "Today"},
		{"tomorrow", date(2026, time.March, 5), "Tomorrow"},
		{"yesterday", date(2026, time.March, 3), "Yesterday"},
		{"later this week", date(2026, time.March, 7), "In 3 days"},
		{"earlier this week", date(2026, time.March, 1), "3 days ago"},
		{"next week", date(2026, time.March, 14), "Mar 14, 2026"},
		{"long past", date(2026, time.February, 1), "Feb 01, 2026"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelativeDate(tt.date, now)
			if got != tt.want {
				t.Errorf("RelativeDate() = %q, want %q", got, tt.want)
			}
		})
	}
}
