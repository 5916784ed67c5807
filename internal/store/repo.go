package store

import (
	"context"
	"encoding/json"
	"time"
)

// Storage keys for the string-keyed JSON records. Each is independently
// loadable/savable/removable; there is no cross-key transactionality.
const (
	KeyProfile     = "student_profile"
	KeyPlan        = "study_plan"
	KeyProgress    = "progress_data"
	KeyPreferences = "preferences"
	KeyTheme       = "theme"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// RecordRepo is the string-keyed JSON blob store. Reads of a missing key
// return (nil, nil): absence is not an error.
type RecordRepo interface {
	// Get returns the raw JSON stored under key, or nil if absent.
	Get(ctx context.Context, key string) (json.RawMessage, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value any) error

	// Remove deletes the record under key. Removing an absent key is a
	// no-op.
	Remove(ctx context.Context, key string) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStat aggregates token usage for one purpose or model.
type LLMUsageStat struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// CompletionEventData captures one completed study block.
type CompletionEventData struct {
	BlockID         string
	SubjectID       string
	DurationMinutes int
	LogDate         string // YYYY-MM-DD
}

// CompletionEventRecord is a stored completion event.
type CompletionEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	CompletionEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]LLMUsageStat, error)

	// AppendCompletion records a completed study block.
	AppendCompletion(ctx context.Context, data CompletionEventData) error

	// QueryCompletions returns completion events, newest first.
	QueryCompletions(ctx context.Context, opts QueryOpts) ([]CompletionEventRecord, error)
}
