package progress

import (
	"sort"
	"time"
)

// DateFormat is the calendar-date key format for daily logs.
const DateFormat = "2006-01-02"

// DailyLog aggregates one calendar day of study activity. There is at
// most one entry per date.
type DailyLog struct {
	Date             string         `json:"date"` // DateFormat
	CompletedBlocks  []string       `json:"completedBlocks"`
	TotalMinutes     int            `json:"totalMinutesStudied"`
	SubjectBreakdown map[string]int `json:"subjectBreakdown"`
	Sessions         int            `json:"focusSessions"`
}

// Data is the persisted progress state for one study plan.
type Data struct {
	PlanID    string     `json:"planId"`
	DailyLogs []DailyLog `json:"dailyLogs"`
}

// Completion is one logged study-session completion event.
type Completion struct {
	BlockID   string
	SubjectID string
	Minutes   int
}

// LogSession merges a completion into the log entry for the given day,
// creating the entry if the day has no activity yet. Returns the updated
// log slice; the input is not modified.
func LogSession(logs []DailyLog, day time.Time, c Completion) []DailyLog {
	date := day.Format(DateFormat)

	updated := make([]DailyLog, len(logs))
	copy(updated, logs)

	for i, l := range updated {
		if l.Date != date {
			continue
		}
		merged := l
		merged.CompletedBlocks = append(append([]string{}, l.CompletedBlocks...), c.BlockID)
		merged.TotalMinutes += c.Minutes
		merged.SubjectBreakdown = make(map[string]int, len(l.SubjectBreakdown)+1)
		for k, v := range l.SubjectBreakdown {
			merged.SubjectBreakdown[k] = v
		}
		merged.SubjectBreakdown[c.SubjectID] += c.Minutes
		merged.Sessions++
		updated[i] = merged
		return updated
	}

	return append(updated, DailyLog{
		Date:             date,
		CompletedBlocks:  []string{c.BlockID},
		TotalMinutes:     c.Minutes,
		SubjectBreakdown: map[string]int{c.SubjectID: c.Minutes},
		Sessions:         1,
	})
}

// logFor finds the entry for a given date, if any.
func logFor(logs []DailyLog, day time.Time) (DailyLog, bool) {
	date := day.Format(DateFormat)
	for _, l := range logs {
		if l.Date == date {
			return l, true
		}
	}
	return DailyLog{}, false
}

// TodayLog returns the entry for today, if the day has activity.
func TodayLog(logs []DailyLog, now time.Time) (DailyLog, bool) {
	return logFor(logs, now)
}

// sortedDescending returns the logs ordered newest first.
func sortedDescending(logs []DailyLog) []DailyLog {
	out := make([]DailyLog, len(logs))
	copy(out, logs)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}
