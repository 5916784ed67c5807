package planner

import (
	"fmt"
	"math"
	"time"
)

// slotBaseHours maps preferred time slots to a starting hour of day.
var slotBaseHours = map[TimeSlot]int{
	SlotMorning:   9,
	SlotAfternoon: 14,
	SlotEvening:   18,
	SlotNight:     20,
}

// firstSlot returns the student's first preferred slot, defaulting to
// afternoon.
func firstSlot(prefs Preferences) TimeSlot {
	if len(prefs.PreferredSlots) == 0 {
		return SlotAfternoon
	}
	return prefs.PreferredSlots[0]
}

// SlotTime formats the start time for a slot plus an hour offset,
// wrapping at midnight.
func SlotTime(slot TimeSlot, hourOffset int) string {
	base, ok := slotBaseHours[slot]
	if !ok {
		base = slotBaseHours[SlotAfternoon]
	}
	return fmt.Sprintf("%02d:00", (base+hourOffset)%24)
}

// hasUpcomingAssessment reports whether the subject has an assessment
// falling within the prep window (inclusive, non-negative) of date.
func hasUpcomingAssessment(subjectID string, date time.Time, assessments []Assessment) bool {
	for _, a := range assessments {
		if a.SubjectID != subjectID || a.Date == "" {
			continue
		}
		assessmentDate, err := time.ParseInLocation(DateFormat, a.Date, date.Location())
		if err != nil {
			continue
		}
		daysUntil := int(math.Ceil(assessmentDate.Sub(date).Hours() / 24))
		if daysUntil >= 0 && daysUntil <= AssessmentWindowDays {
			return true
		}
	}
	return false
}

// sessionType assigns the pedagogical type of a block, in precedence
// order: assessment-prep, final-week revision, every-third-slot practice,
// learning.
func sessionType(subjectID string, date time.Time, assessments []Assessment, weekIdx, totalWeeks, dayIdx, rankIdx int) BlockType {
	if hasUpcomingAssessment(subjectID, date, assessments) {
		return BlockAssessmentPrep
	}
	if weekIdx == totalWeeks-1 {
		return BlockRevision
	}
	if (dayIdx+rankIdx)%3 == 2 {
		return BlockPractice
	}
	return BlockLearning
}

// synthesizeDay walks the ranked subject list once for a single active
// day, emitting one fixed-length block per subject until the daily hour
// budget is reached. With budget < subject count only the top-ranked
// subjects get a session that day; lower-ranked subjects rotate in on
// later days of the week.
func synthesizeDay(ranked []Subject, assessments []Assessment, prefs Preferences, date time.Time, weekIdx, totalWeeks, dayIdx int, newID IDGenerator) []StudyBlock {
	var blocks []StudyBlock
	slot := firstSlot(prefs)
	hourCount := 0

	for rankIdx, subject := range ranked {
		if hourCount >= prefs.DailyStudyHours {
			break
		}

		blocks = append(blocks, StudyBlock{
			ID:          newID(),
			SubjectID:   subject.ID,
			SubjectName: subject.Name,
			Date:        date.Format(DateFormat),
			StartTime:   SlotTime(slot, hourCount),
			EndTime:     SlotTime(slot, hourCount+1),
			Duration:    SessionMinutes,
			Topics:      []string{fmt.Sprintf("Chapter %d", weekIdx+1), "Practice Problems"},
			Type:        sessionType(subject.ID, date, assessments, weekIdx, totalWeeks, dayIdx, rankIdx),
			Completed:   false,
		})
		hourCount++
	}

	return blocks
}
