package cmd

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/studyplan/internal/aiplan"
	"github.com/abhisek/studyplan/internal/llm"
	"github.com/abhisek/studyplan/internal/planner"
	"github.com/abhisek/studyplan/internal/progress"
	"github.com/abhisek/studyplan/internal/store"
	"github.com/abhisek/studyplan/internal/student"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new study plan",
	Long: `Generate a multi-week study plan from subjects, assessments, and
preferences. Subjects use the form NAME:PRIORITY:CONFIDENCE, e.g.
"Mathematics:high:2". Assessments use SUBJECT:TYPE:DATE[:WEIGHT], e.g.
"Mathematics:test:2026-09-15:30".

When an AI provider is configured (GEMINI_API_KEY, OPENAI_API_KEY, or
ANTHROPIC_API_KEY), the schedule is drafted by the model; otherwise, or
whenever the model fails, the deterministic planner takes over.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := requestFromFlags(cmd)
		if err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()

		var provider llm.Provider
		if noAI, _ := cmd.Flags().GetBool("no-ai"); !noAI {
			// A missing or broken provider is not an error; generation
			// falls back to the deterministic planner.
			provider, _ = llm.NewProviderFromEnv(ctx, s.EventRepo())
		}

		svc := aiplan.NewService(provider, aiplan.DefaultConfig())
		if prof, err := student.Load(ctx, s.RecordRepo()); err == nil && prof != nil {
			svc.SetStudent(prof)
		}
		plan, usedAI, err := svc.Generate(ctx, req)
		if err != nil {
			return err
		}

		// Persistence failures don't void the generated plan; the user
		// still gets the schedule, with a warning that it wasn't saved.
		records := s.RecordRepo()
		if err := savePlan(ctx, records, plan); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
		if err := records.Set(ctx, store.KeyPreferences, req.Preferences); err != nil {
			fmt.Fprintf(os.Stderr, "warning: save preferences: %v\n", err)
		}
		// A fresh plan starts with fresh progress.
		if err := saveProgress(ctx, records, &progress.Data{PlanID: plan.ID}); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}

		printPlanSummary(plan, req, usedAI)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringArrayP("subject", "s", nil, "Subject as NAME:PRIORITY:CONFIDENCE (repeatable)")
	generateCmd.Flags().StringArrayP("assessment", "a", nil, "Assessment as SUBJECT:TYPE:DATE[:WEIGHT] (repeatable)")
	generateCmd.Flags().StringP("target", "t", "", "Target date (YYYY-MM-DD)")
	generateCmd.Flags().Int("hours", 2, "Study hours per day")
	generateCmd.Flags().Int("days", 5, "Study days per week")
	generateCmd.Flags().Bool("weekend", false, "Include weekends as study days")
	generateCmd.Flags().StringArray("slot", nil, "Preferred time slot: morning, afternoon, evening, night (repeatable)")
	generateCmd.Flags().Bool("no-ai", false, "Skip the AI backend and use the deterministic planner")

	_ = generateCmd.MarkFlagRequired("subject")
	_ = generateCmd.MarkFlagRequired("target")
}

// requestFromFlags assembles and validates the generation request.
func requestFromFlags(cmd *cobra.Command) (planner.Request, error) {
	var req planner.Request

	targetStr, _ := cmd.Flags().GetString("target")
	target, err := time.ParseInLocation(planner.DateFormat, targetStr, time.Local)
	if err != nil {
		return req, fmt.Errorf("invalid target date %q: expected YYYY-MM-DD", targetStr)
	}
	// End of the target day, so "today" as a target still validates as
	// being in the future.
	req.TargetDate = target.AddDate(0, 0, 1).Add(-time.Second)

	subjectSpecs, _ := cmd.Flags().GetStringArray("subject")
	for _, spec := range subjectSpecs {
		subject, err := parseSubject(spec)
		if err != nil {
			return req, err
		}
		req.Subjects = append(req.Subjects, subject)
	}

	assessmentSpecs, _ := cmd.Flags().GetStringArray("assessment")
	for _, spec := range assessmentSpecs {
		assessment, err := parseAssessment(spec, req.Subjects)
		if err != nil {
			return req, err
		}
		req.Assessments = append(req.Assessments, assessment)
	}

	hours, _ := cmd.Flags().GetInt("hours")
	days, _ := cmd.Flags().GetInt("days")
	weekend, _ := cmd.Flags().GetBool("weekend")
	slotNames, _ := cmd.Flags().GetStringArray("slot")

	var slots []planner.TimeSlot
	for _, name := range slotNames {
		slot, err := parseSlot(name)
		if err != nil {
			return req, err
		}
		slots = append(slots, slot)
	}

	req.Preferences = planner.Preferences{
		DailyStudyHours:  hours,
		PreferredSlots:   slots,
		StudyDaysPerWeek: days,
		WeekendStudy:     weekend,
	}
	return req, nil
}

func parseSubject(spec string) (planner.Subject, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 1 || parts[0] == "" {
		return planner.Subject{}, fmt.Errorf("invalid subject %q: expected NAME:PRIORITY:CONFIDENCE", spec)
	}

	subject := planner.Subject{
		ID:              uuid.NewString(),
		Name:            parts[0],
		Priority:        planner.PriorityMedium,
		ConfidenceLevel: 3,
	}

	if len(parts) > 1 && parts[1] != "" {
		priority, err := parsePriority(parts[1])
		if err != nil {
			return planner.Subject{}, fmt.Errorf("subject %q: %w", parts[0], err)
		}
		subject.Priority = priority
	}
	if len(parts) > 2 && parts[2] != "" {
		confidence, err := strconv.Atoi(parts[2])
		if err != nil || confidence < 1 || confidence > 5 {
			return planner.Subject{}, fmt.Errorf("subject %q: confidence must be 1-5, got %q", parts[0], parts[2])
		}
		subject.ConfidenceLevel = confidence
	}
	return subject, nil
}

func parsePriority(raw string) (planner.Priority, error) {
	switch planner.Priority(strings.ToLower(raw)) {
	case planner.PriorityCritical:
		return planner.PriorityCritical, nil
	case planner.PriorityHigh:
		return planner.PriorityHigh, nil
	case planner.PriorityMedium:
		return planner.PriorityMedium, nil
	case planner.PriorityLow:
		return planner.PriorityLow, nil
	}
	return "", fmt.Errorf("unknown priority %q: expected critical, high, medium, or low", raw)
}

func parseSlot(raw string) (planner.TimeSlot, error) {
	switch planner.TimeSlot(strings.ToLower(raw)) {
	case planner.SlotMorning:
		return planner.SlotMorning, nil
	case planner.SlotAfternoon:
		return planner.SlotAfternoon, nil
	case planner.SlotEvening:
		return planner.SlotEvening, nil
	case planner.SlotNight:
		return planner.SlotNight, nil
	}
	return "", fmt.Errorf("unknown time slot %q: expected morning, afternoon, evening, or night", raw)
}

func parseAssessment(spec string, subjects []planner.Subject) (planner.Assessment, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 3 {
		return planner.Assessment{}, fmt.Errorf("invalid assessment %q: expected SUBJECT:TYPE:DATE[:WEIGHT]", spec)
	}

	var subjectID string
	for _, s := range subjects {
		if strings.EqualFold(s.Name, parts[0]) {
			subjectID = s.ID
			break
		}
	}
	if subjectID == "" {
		return planner.Assessment{}, fmt.Errorf("assessment %q references unknown subject %q", spec, parts[0])
	}

	aType, err := parseAssessmentType(parts[1])
	if err != nil {
		return planner.Assessment{}, fmt.Errorf("assessment %q: %w", spec, err)
	}

	if _, err := time.Parse(planner.DateFormat, parts[2]); err != nil {
		return planner.Assessment{}, fmt.Errorf("assessment %q: invalid date %q, expected YYYY-MM-DD", spec, parts[2])
	}

	assessment := planner.Assessment{
		ID:        uuid.NewString(),
		SubjectID: subjectID,
		Type:      aType,
		Date:      parts[2],
	}
	if len(parts) > 3 && parts[3] != "" {
		weight, err := strconv.Atoi(parts[3])
		if err != nil || weight < 0 || weight > 100 {
			return planner.Assessment{}, fmt.Errorf("assessment %q: weight must be 0-100, got %q", spec, parts[3])
		}
		assessment.Weight = weight
	}
	return assessment, nil
}

func parseAssessmentType(raw string) (planner.AssessmentType, error) {
	switch planner.AssessmentType(strings.ToLower(raw)) {
	case planner.AssessmentQuiz:
		return planner.AssessmentQuiz, nil
	case planner.AssessmentTest:
		return planner.AssessmentTest, nil
	case planner.AssessmentMidterm:
		return planner.AssessmentMidterm, nil
	case planner.AssessmentFinal:
		return planner.AssessmentFinal, nil
	case planner.AssessmentProject:
		return planner.AssessmentProject, nil
	}
	return "", fmt.Errorf("unknown assessment type %q: expected quiz, test, midterm, final, or project", raw)
}

func printPlanSummary(plan *planner.StudyPlan, req planner.Request, usedAI bool) {
	source := "deterministic planner"
	if usedAI {
		source = "AI backend"
	}

	fmt.Printf("Generated a %d-week plan via %s (target %s).\n\n", plan.TotalWeeks, source, plan.TargetDate)
	fmt.Printf("Total scheduled: %.1f hours across %d weeks\n", plan.TotalHours, plan.TotalWeeks)
	fmt.Printf("Estimated workload: %.1f hours\n\n", planner.EstimateWorkload(req.Subjects))

	fmt.Println("Hour allocation by subject:")
	type share struct {
		name  string
		hours float64
	}
	var shares []share
	for _, s := range plan.Subjects {
		shares = append(shares, share{s.Name, plan.HourDistribution[s.ID]})
	}
	sort.Slice(shares, func(i, j int) bool { return shares[i].hours > shares[j].hours })
	for _, sh := range shares {
		fmt.Printf("  %-24s %6.1fh\n", sh.name, sh.hours)
	}

	if len(plan.WeeklySchedules) > 0 {
		first := plan.WeeklySchedules[0]
		fmt.Printf("\nWeek 1 (%s to %s): %d sessions, %.1f hours\n",
			first.StartDate, first.EndDate, len(first.StudyBlocks), first.TotalHours)
		for _, goal := range first.WeeklyGoals {
			fmt.Printf("  - %s\n", goal)
		}
	}

	fmt.Printf("\n%s\n", plan.Insights.BalancingStrategy)
	fmt.Println("\nRun 'studyplan today' to see today's sessions.")
}
