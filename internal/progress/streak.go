package progress

import "time"

// Streak counts consecutive calendar days with logged activity, walking
// backward from today. A missing entry for today breaks the streak
// immediately: after sorting entries newest first, the count grows only
// while entry i's date equals today minus i days.
func Streak(logs []DailyLog, now time.Time) int {
	if len(logs) == 0 {
		return 0
	}

	sorted := sortedDescending(logs)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	streak := 0
	for i, l := range sorted {
		expected := today.AddDate(0, 0, -i).Format(DateFormat)
		if l.Date != expected {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak finds the longest run of consecutive daily entries
// anywhere in the log, regardless of whether it reaches today.
func LongestStreak(logs []DailyLog) int {
	if len(logs) == 0 {
		return 0
	}

	sorted := sortedDescending(logs)
	longest, run := 1, 1

	for i := 1; i < len(sorted); i++ {
		prev, err1 := time.Parse(DateFormat, sorted[i-1].Date)
		cur, err2 := time.Parse(DateFormat, sorted[i].Date)
		if err1 == nil && err2 == nil && prev.AddDate(0, 0, -1).Equal(cur) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}
