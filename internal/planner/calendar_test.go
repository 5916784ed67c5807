package planner

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTotalWeeks(t *testing.T) {
	start := date(2026, time.March, 2)

	tests := []struct {
		name   string
		target time.Time
		want   int
	}{
		{"same day", start, 1},
		{"one day", start.AddDate(0, 0, 1), 1},
		{"exactly a week", start.AddDate(0, 0, 7), 1},
		{"eight days rounds up", start.AddDate(0, 0, 8), 2},
		{"two weeks", start.AddDate(0, 0, 14), 2},
		{"fifteen days", start.AddDate(0, 0, 15), 3},
		{"past target clamps to one", start.AddDate(0, 0, -10), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TotalWeeks(start, tt.target)
			if got != tt.want {
				t.Errorf("TotalWeeks() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestWeekWindow(t *testing.T) {
	// Wednesday 2026-03-04 aligns back to Monday 2026-03-02.
	start := date(2026, time.March, 4)

	ws, we := WeekWindow(start, 0)
	if got := ws.Format(DateFormat); got != "2026-03-02" {
		t.Errorf("week 0 start = %s, want 2026-03-02", got)
	}
	if got := we.Format(DateFormat); got != "2026-03-08" {
		t.Errorf("week 0 end = %s, want 2026-03-08", got)
	}

	if ws.Weekday() != time.Monday {
		t.Errorf("week start is %s, want Monday", ws.Weekday())
	}
}

func TestWeekWindowsAreContiguous(t *testing.T) {
	start := date(2026, time.March, 4)

	for i := 0; i < 5; i++ {
		_, end := WeekWindow(start, i)
		nextStart, _ := WeekWindow(start, i+1)
		if !nextStart.Equal(end.AddDate(0, 0, 1)) {
			t.Errorf("week %d ends %s but week %d starts %s",
				i, end.Format(DateFormat), i+1, nextStart.Format(DateFormat))
		}
	}
}

func TestActiveDayOffsets(t *testing.T) {
	tests := []struct {
		name  string
		prefs Preferences
		want  []int
	}{
		{
			name:  "five weekdays",
			prefs: Preferences{StudyDaysPerWeek: 5, WeekendStudy: false},
			want:  []int{0, 1, 2, 3, 4},
		},
		{
			name:  "seven days needs weekend study",
			prefs: Preferences{StudyDaysPerWeek: 7, WeekendStudy: true},
			want:  []int{0, 1, 2, 3, 4, 5, 6},
		},
		{
			name:  "seven requested without weekends caps at five",
			prefs: Preferences{StudyDaysPerWeek: 7, WeekendStudy: false},
			want:  []int{0, 1, 2, 3, 4},
		},
		{
			name:  "three days",
			prefs: Preferences{StudyDaysPerWeek: 3, WeekendStudy: false},
			want:  []int{0, 1, 2},
		},
		{
			name:  "zero clamps to one",
			prefs: Preferences{StudyDaysPerWeek: 0},
			want:  []int{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ActiveDayOffsets(tt.prefs)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d offsets, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("offset[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}
