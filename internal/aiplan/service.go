package aiplan

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/studyplan/internal/llm"
	"github.com/abhisek/studyplan/internal/planner"
	"github.com/abhisek/studyplan/internal/student"
)

// Service generates study plans, consulting the AI backend first and
// falling back to the deterministic planner whenever the backend is
// absent or misbehaves. Callers never see an AI failure; they always get
// a plan or a validation error.
type Service struct {
	provider llm.Provider
	fallback *planner.Planner
	newID    planner.IDGenerator
	now      planner.Clock
	cfg      Config
	student  *student.Profile
}

// SetStudent attaches profile context to the AI prompt. A nil profile is
// fine; the prompt simply omits the student section.
func (s *Service) SetStudent(p *student.Profile) { s.student = p }

// NewService creates a Service. A nil provider is valid and routes every
// request straight to the deterministic planner.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{
		provider: provider,
		fallback: planner.New(nil, nil),
		newID:    uuid.NewString,
		now:      time.Now,
		cfg:      cfg,
	}
}

// Generate produces a study plan for the request. Validation errors are
// returned as-is; everything past validation is total.
func (s *Service) Generate(ctx context.Context, req planner.Request) (*planner.StudyPlan, bool, error) {
	now := s.now()
	if err := planner.Validate(req, now); err != nil {
		return nil, false, err
	}

	if s.provider != nil {
		if plan, err := s.generateAI(ctx, req, now); err == nil {
			return plan, true, nil
		}
	}

	plan, err := s.fallback.Generate(req)
	return plan, false, err
}

func (s *Service) generateAI(ctx context.Context, req planner.Request, now time.Time) (*planner.StudyPlan, error) {
	ctx = llm.WithPurpose(ctx, "plan-gen")
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	totalWeeks := planner.TotalWeeks(now, req.TargetDate)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildUserMessage(req, totalWeeks, s.student)}},
		Schema:      PlanSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, err
	}

	out, err := parsePlanOutput(resp.Content)
	if err != nil {
		return nil, err
	}

	return s.assemble(req, now, totalWeeks, out)
}

// assemble converts the model's schedule into a StudyPlan, anchoring the
// week windows and hour distribution the same way the deterministic
// planner does so downstream consumers can't tell the paths apart.
func (s *Service) assemble(req planner.Request, now time.Time, totalWeeks int, out *aiPlanOutput) (*planner.StudyPlan, error) {
	ranked := planner.Rank(req.Subjects)
	activeDays := planner.ActiveDayOffsets(req.Preferences)
	poolHours := float64(totalWeeks * len(activeDays) * req.Preferences.DailyStudyHours)
	distribution := planner.DistributeHours(ranked, poolHours)

	byName := make(map[string]planner.Subject, len(ranked))
	for _, sub := range ranked {
		byName[strings.ToLower(sub.Name)] = sub
	}

	var schedules []planner.WeeklySchedule
	var planHours float64
	totalBlocks := 0

	for _, week := range out.WeeklySchedules {
		weekIdx := week.WeekNumber - 1
		if weekIdx < 0 || weekIdx >= totalWeeks {
			continue
		}
		weekStart, weekEnd := planner.WeekWindow(now, weekIdx)

		var blocks []planner.StudyBlock
		hourByDay := make(map[int]int)
		for _, ab := range week.StudyBlocks {
			subject, ok := byName[strings.ToLower(ab.SubjectName)]
			if !ok {
				continue
			}
			day := ab.DayOfWeek
			if day < 0 || day > 6 {
				continue
			}
			duration := ab.Duration
			if duration <= 0 {
				duration = planner.SessionMinutes
			}
			topics := ab.Topics
			if len(topics) == 0 {
				topics = []string{subject.Name}
			}

			offset := hourByDay[day]
			hourByDay[day]++
			slot := firstSlot(req.Preferences)
			blocks = append(blocks, planner.StudyBlock{
				ID:          s.newID(),
				SubjectID:   subject.ID,
				SubjectName: subject.Name,
				Date:        weekStart.AddDate(0, 0, day).Format(planner.DateFormat),
				StartTime:   planner.SlotTime(slot, offset),
				EndTime:     planner.SlotTime(slot, offset+1),
				Duration:    duration,
				Topics:      topics,
				Type:        blockType(ab.Type),
				Completed:   false,
			})
		}
		totalBlocks += len(blocks)

		var weekHours float64
		for _, b := range blocks {
			weekHours += float64(b.Duration) / 60
		}
		planHours += weekHours

		goals := week.WeeklyGoals
		if len(goals) == 0 {
			goals = []string{"Maintain daily study schedule"}
		}

		schedules = append(schedules, planner.WeeklySchedule{
			WeekNumber:  weekIdx + 1,
			StartDate:   weekStart.Format(planner.DateFormat),
			EndDate:     weekEnd.Format(planner.DateFormat),
			TotalHours:  weekHours,
			StudyBlocks: blocks,
			WeeklyGoals: goals,
		})
	}

	if totalBlocks == 0 {
		return nil, errors.New("model schedule matched no subjects")
	}

	subjects := make([]planner.Subject, len(ranked))
	copy(subjects, ranked)
	for i := range subjects {
		subjects[i].HoursAllocated = distribution[subjects[i].ID]
	}

	insights := planner.Insights{
		PriorityReasoning:   out.Insights.PriorityReasoning,
		StudyTips:           out.Insights.StudyTips,
		PotentialChallenges: out.Insights.PotentialChallenges,
		BalancingStrategy:   out.Insights.BalancingStrategy,
	}

	return &planner.StudyPlan{
		ID:               s.newID(),
		TargetDate:       req.TargetDate.Format(planner.DateFormat),
		GeneratedAt:      now,
		TotalWeeks:       totalWeeks,
		TotalHours:       planHours,
		Subjects:         subjects,
		Assessments:      req.Assessments,
		WeeklySchedules:  schedules,
		HourDistribution: distribution,
		Insights:         insights,
	}, nil
}

func blockType(raw string) planner.BlockType {
	switch planner.BlockType(raw) {
	case planner.BlockLearning, planner.BlockPractice, planner.BlockRevision, planner.BlockAssessmentPrep:
		return planner.BlockType(raw)
	}
	return planner.BlockLearning
}

func firstSlot(prefs planner.Preferences) planner.TimeSlot {
	if len(prefs.PreferredSlots) == 0 {
		return planner.SlotAfternoon
	}
	return prefs.PreferredSlots[0]
}
