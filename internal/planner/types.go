package planner

import "time"

// DateFormat is the wire format for calendar dates throughout the plan.
const DateFormat = "2006-01-02"

// SessionMinutes is the fixed duration of a synthesized study block.
const SessionMinutes = 60

// AssessmentWindowDays is how far ahead an assessment biases session
// typing toward assessment-prep.
const AssessmentWindowDays = 7

// Priority is the urgency tier of a subject, independent of confidence.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Difficulty tags a topic.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// AssessmentType classifies an upcoming assessment.
type AssessmentType string

const (
	AssessmentQuiz    AssessmentType = "quiz"
	AssessmentTest    AssessmentType = "test"
	AssessmentMidterm AssessmentType = "midterm"
	AssessmentFinal   AssessmentType = "final"
	AssessmentProject AssessmentType = "project"
)

// TimeSlot is a preferred time-of-day band for studying.
type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
	SlotNight     TimeSlot = "night"
)

// BlockType is the pedagogical purpose of a study block.
type BlockType string

const (
	BlockLearning       BlockType = "learning"
	BlockPractice       BlockType = "practice"
	BlockRevision       BlockType = "revision"
	BlockAssessmentPrep BlockType = "assessment-prep"
)

// Topic is a unit of material within a subject.
type Topic struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Completed    bool       `json:"completed"`
	TimeEstimate int        `json:"timeEstimate"` // minutes
	Difficulty   Difficulty `json:"difficulty"`
	Notes        string     `json:"notes,omitempty"`
}

// Subject describes one subject the student is preparing.
// ConfidenceLevel is 1-5, 1 = least confident.
type Subject struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	ConfidenceLevel int      `json:"confidenceLevel"`
	Priority        Priority `json:"priority"`
	Topics          []Topic  `json:"topics"`
	TargetScore     int      `json:"targetScore,omitempty"`
	CurrentScore    int      `json:"currentScore,omitempty"`
	HoursAllocated  float64  `json:"totalHoursAllocated,omitempty"`
}

// Assessment is an upcoming exam or graded deliverable for a subject.
type Assessment struct {
	ID        string         `json:"id"`
	SubjectID string         `json:"subjectId"`
	Type      AssessmentType `json:"type"`
	Date      string         `json:"date"` // DateFormat
	Weight    int            `json:"weight"` // percentage
}

// Preferences captures the student's study-time budget and habits.
type Preferences struct {
	DailyStudyHours   int        `json:"dailyStudyHours"`
	PreferredSlots    []TimeSlot `json:"preferredTimeSlots"`
	StudyDaysPerWeek  int        `json:"studyDaysPerWeek"`
	WeekendStudy      bool       `json:"weekendStudy"`
}

// StudyBlock is one scheduled session: one subject, one date, fixed
// duration. Completion marking is the only mutation after synthesis.
type StudyBlock struct {
	ID             string    `json:"id"`
	SubjectID      string    `json:"subjectId"`
	SubjectName    string    `json:"subjectName"`
	Date           string    `json:"date"` // DateFormat
	StartTime      string    `json:"startTime"` // "HH:00"
	EndTime        string    `json:"endTime"`
	Duration       int       `json:"duration"` // minutes
	Topics         []string  `json:"topics"`
	Type           BlockType `json:"type"`
	Completed      bool      `json:"completed"`
	ActualDuration int       `json:"actualDuration,omitempty"`
}

// WeeklySchedule is one contiguous 7-day window of the plan.
type WeeklySchedule struct {
	WeekNumber  int          `json:"weekNumber"` // 1-based
	StartDate   string       `json:"startDate"`
	EndDate     string       `json:"endDate"`
	TotalHours  float64      `json:"totalHours"`
	StudyBlocks []StudyBlock `json:"studyBlocks"`
	WeeklyGoals []string     `json:"weeklyGoals"`
}

// Insights is the narrative bundle attached to a generated plan.
type Insights struct {
	PriorityReasoning   string   `json:"priorityReasoning"`
	StudyTips           []string `json:"studyTips"`
	PotentialChallenges []string `json:"potentialChallenges"`
	BalancingStrategy   string   `json:"balancingStrategy"`
}

// StudyPlan is the full generated schedule. Structure is immutable after
// generation; only block completion state changes.
type StudyPlan struct {
	ID              string             `json:"id"`
	TargetDate      string             `json:"targetDate"`
	GeneratedAt     time.Time          `json:"generatedAt"`
	TotalWeeks      int                `json:"totalWeeks"`
	TotalHours      float64            `json:"totalHours"`
	Subjects        []Subject          `json:"subjects"`
	Assessments     []Assessment       `json:"assessments"`
	WeeklySchedules []WeeklySchedule   `json:"weeklySchedules"`
	HourDistribution map[string]float64 `json:"hourDistribution,omitempty"`
	Insights        Insights           `json:"insights"`
}

// Request carries everything generation needs.
type Request struct {
	Subjects    []Subject
	Assessments []Assessment
	Preferences Preferences
	TargetDate  time.Time
}

// IDGenerator supplies unique identifiers for plans and blocks.
// Injected so tests can substitute deterministic IDs.
type IDGenerator func() string

// Clock supplies the current time. Injected for the same reason.
type Clock func() time.Time
