package planner

import (
	"fmt"
	"sort"
	"time"
)

// BlocksOn returns the plan's blocks scheduled for the given date,
// ordered by start time.
func BlocksOn(plan *StudyPlan, date time.Time) []StudyBlock {
	day := date.Format(DateFormat)
	var blocks []StudyBlock
	for _, week := range plan.WeeklySchedules {
		for _, b := range week.StudyBlocks {
			if b.Date == day {
				blocks = append(blocks, b)
			}
		}
	}
	sort.Slice(blocks, func(i, j int) bool {
		return blocks[i].StartTime < blocks[j].StartTime
	})
	return blocks
}

// UpcomingBlocks returns incomplete blocks falling within the next
// `days` days of now, ordered by date then start time.
func UpcomingBlocks(plan *StudyPlan, now time.Time, days int) []StudyBlock {
	from := now.Format(DateFormat)
	to := now.AddDate(0, 0, days).Format(DateFormat)

	var blocks []StudyBlock
	for _, week := range plan.WeeklySchedules {
		for _, b := range week.StudyBlocks {
			if b.Completed || b.Date < from || b.Date > to {
				continue
			}
			blocks = append(blocks, b)
		}
	}
	sort.Slice(blocks, func(i, j int) bool {
		if blocks[i].Date != blocks[j].Date {
			return blocks[i].Date < blocks[j].Date
		}
		return blocks[i].StartTime < blocks[j].StartTime
	})
	return blocks
}

// WeekProgress summarizes completion within one week.
type WeekProgress struct {
	Completed  int
	Total      int
	Percentage float64
}

// ProgressFor computes a week's completion summary.
func ProgressFor(week WeeklySchedule) WeekProgress {
	total := len(week.StudyBlocks)
	completed := 0
	for _, b := range week.StudyBlocks {
		if b.Completed {
			completed++
		}
	}
	p := WeekProgress{Completed: completed, Total: total}
	if total > 0 {
		p.Percentage = float64(completed) / float64(total) * 100
	}
	return p
}

// MarkComplete sets the completed flag on the block with the given ID,
// optionally recording the actual duration in minutes (0 leaves the
// planned duration). Returns the updated block, or an error if the plan
// has no such block. Structure is never modified, only completion state.
func MarkComplete(plan *StudyPlan, blockID string, actualMinutes int) (*StudyBlock, error) {
	for wi := range plan.WeeklySchedules {
		blocks := plan.WeeklySchedules[wi].StudyBlocks
		for bi := range blocks {
			if blocks[bi].ID != blockID {
				continue
			}
			blocks[bi].Completed = true
			if actualMinutes > 0 {
				blocks[bi].ActualDuration = actualMinutes
			}
			return &blocks[bi], nil
		}
	}
	return nil, fmt.Errorf("no study block with ID %q", blockID)
}
