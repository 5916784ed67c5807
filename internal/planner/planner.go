package planner

import (
	"time"

	"github.com/google/uuid"
)

// Planner builds study plans deterministically. It is the fallback path
// when no AI backend is configured or the backend fails, and the sole
// owner of StudyPlan construction.
type Planner struct {
	newID IDGenerator
	now   Clock
}

// New creates a Planner. Nil arguments fall back to uuid-based IDs and
// the wall clock.
func New(newID IDGenerator, now Clock) *Planner {
	if newID == nil {
		newID = uuid.NewString
	}
	if now == nil {
		now = time.Now
	}
	return &Planner{newID: newID, now: now}
}

// Generate builds the full plan: ranks subjects, partitions the calendar
// into week windows, synthesizes per-day session blocks, and attaches
// weekly goals and insights. Pure transform over the request snapshot;
// total for any request that passes Validate.
func (p *Planner) Generate(req Request) (*StudyPlan, error) {
	now := p.now()
	if err := Validate(req, now); err != nil {
		return nil, err
	}

	ranked := Rank(req.Subjects)
	totalWeeks := TotalWeeks(now, req.TargetDate)

	activeDays := ActiveDayOffsets(req.Preferences)
	poolHours := float64(totalWeeks * len(activeDays) * req.Preferences.DailyStudyHours)
	distribution := DistributeHours(ranked, poolHours)

	var schedules []WeeklySchedule
	var planHours float64

	for weekIdx := 0; weekIdx < totalWeeks; weekIdx++ {
		weekStart, weekEnd := WeekWindow(now, weekIdx)

		var blocks []StudyBlock
		for dayIdx, offset := range activeDays {
			date := weekStart.AddDate(0, 0, offset)
			blocks = append(blocks, synthesizeDay(
				ranked, req.Assessments, req.Preferences,
				date, weekIdx, totalWeeks, dayIdx, p.newID)...)
		}

		var weekHours float64
		for _, b := range blocks {
			weekHours += float64(b.Duration) / 60
		}
		planHours += weekHours

		schedules = append(schedules, WeeklySchedule{
			WeekNumber:  weekIdx + 1,
			StartDate:   weekStart.Format(DateFormat),
			EndDate:     weekEnd.Format(DateFormat),
			TotalHours:  weekHours,
			StudyBlocks: blocks,
			WeeklyGoals: weeklyGoals(weekIdx, totalWeeks, ranked),
		})
	}

	subjects := make([]Subject, len(ranked))
	copy(subjects, ranked)
	for i := range subjects {
		subjects[i].HoursAllocated = distribution[subjects[i].ID]
	}

	return &StudyPlan{
		ID:               p.newID(),
		TargetDate:       req.TargetDate.Format(DateFormat),
		GeneratedAt:      now,
		TotalWeeks:       totalWeeks,
		TotalHours:       planHours,
		Subjects:         subjects,
		Assessments:      req.Assessments,
		WeeklySchedules:  schedules,
		HourDistribution: distribution,
		Insights:         buildInsights(ranked, req.Preferences, totalWeeks),
	}, nil
}
