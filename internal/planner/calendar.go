package planner

import (
	"math"
	"time"
)

// TotalWeeks returns how many week windows the plan needs to cover the
// span from start to target: ceil(days/7), minimum 1.
func TotalWeeks(start, target time.Time) int {
	weeks := int(math.Ceil(target.Sub(start).Hours() / (7 * 24)))
	if weeks < 1 {
		return 1
	}
	return weeks
}

// weekStartOf aligns t to the Monday of its week, at midnight in t's
// location.
func weekStartOf(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}

// WeekWindow returns the start and end dates of the index-th week
// (0-based) of a plan beginning at start. Windows are contiguous,
// Monday-aligned, and span exactly 7 calendar days.
func WeekWindow(start time.Time, index int) (time.Time, time.Time) {
	weekStart := weekStartOf(start).AddDate(0, 0, 7*index)
	return weekStart, weekStart.AddDate(0, 0, 6)
}

// ActiveDayOffsets selects which days of a Monday-aligned week receive
// sessions, as offsets from the week start. With weekend study enabled
// the first min(N, 7) calendar days are active; without it the selection
// is capped to the five weekdays.
func ActiveDayOffsets(prefs Preferences) []int {
	n := prefs.StudyDaysPerWeek
	maxDays := 7
	if !prefs.WeekendStudy {
		maxDays = 5
	}
	if n > maxDays {
		n = maxDays
	}
	if n < 1 {
		n = 1
	}

	offsets := make([]int, n)
	for i := range offsets {
		offsets[i] = i
	}
	return offsets
}
