package aiplan

import (
	"fmt"
	"strings"

	"github.com/abhisek/studyplan/internal/planner"
	"github.com/abhisek/studyplan/internal/student"
)

const systemPrompt = `You are an expert study planner and learning coach. You design
multi-week study schedules for students preparing for exams.

Rules:
- Prioritize subjects with higher priority and lower confidence.
- Schedule assessment-prep sessions in the week before each assessment.
- Reserve the final week mostly for revision.
- Respect the student's daily hour budget and active study days.
- Keep sessions to roughly one hour each.
- Respond with JSON only, matching the requested schema exactly.`

// buildUserMessage renders the generation request as a prompt.
func buildUserMessage(req planner.Request, totalWeeks int, prof *student.Profile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a %d-week study plan ending on %s.\n\n",
		totalWeeks, req.TargetDate.Format(planner.DateFormat))

	if prof != nil {
		b.WriteString("Student:\n")
		if prof.Name != "" {
			fmt.Fprintf(&b, "- name: %s\n", prof.Name)
		}
		if prof.EducationLevel != "" {
			fmt.Fprintf(&b, "- education level: %s\n", prof.EducationLevel)
		}
		if prof.ExamName != "" {
			fmt.Fprintf(&b, "- preparing for: %s\n", prof.ExamName)
		}
		b.WriteString("\n")
	}

	b.WriteString("Subjects:\n")
	for _, s := range req.Subjects {
		fmt.Fprintf(&b, "- %s: priority %s, confidence %d/5", s.Name, s.Priority, s.ConfidenceLevel)
		if len(s.Topics) > 0 {
			names := make([]string, len(s.Topics))
			for i, t := range s.Topics {
				names[i] = t.Name
			}
			fmt.Fprintf(&b, ", topics: %s", strings.Join(names, ", "))
		}
		b.WriteString("\n")
	}

	if len(req.Assessments) > 0 {
		b.WriteString("\nUpcoming assessments:\n")
		for _, a := range req.Assessments {
			name := subjectName(req.Subjects, a.SubjectID)
			fmt.Fprintf(&b, "- %s %s on %s (%d%% of grade)\n", name, a.Type, a.Date, a.Weight)
		}
	}

	b.WriteString("\nPreferences:\n")
	fmt.Fprintf(&b, "- %d hours per day, %d days per week\n",
		req.Preferences.DailyStudyHours, req.Preferences.StudyDaysPerWeek)
	if len(req.Preferences.PreferredSlots) > 0 {
		slots := make([]string, len(req.Preferences.PreferredSlots))
		for i, s := range req.Preferences.PreferredSlots {
			slots[i] = string(s)
		}
		fmt.Fprintf(&b, "- preferred time slots: %s\n", strings.Join(slots, ", "))
	}
	if req.Preferences.WeekendStudy {
		b.WriteString("- weekend study is fine\n")
	} else {
		b.WriteString("- weekdays only\n")
	}

	b.WriteString("\nUse dayOfWeek offsets 0-6 where 0 is Monday. ")
	b.WriteString("Refer to subjects by the exact names listed above.")

	return b.String()
}

func subjectName(subjects []planner.Subject, id string) string {
	for _, s := range subjects {
		if s.ID == id {
			return s.Name
		}
	}
	return id
}
