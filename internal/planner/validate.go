package planner

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNoSubjects rejects generation with an empty subject list.
	ErrNoSubjects = errors.New("at least one subject is required")

	// ErrTargetNotFuture rejects a target date that is not after today.
	ErrTargetNotFuture = errors.New("target date must be in the future")
)

// Validate checks a generation request against the input invariants.
// Validation failures are the only errors generation can surface; once a
// request passes, the deterministic planner cannot fail.
func Validate(req Request, now time.Time) error {
	if len(req.Subjects) == 0 {
		return ErrNoSubjects
	}
	if !req.TargetDate.After(now) {
		return ErrTargetNotFuture
	}
	for _, s := range req.Subjects {
		if s.ConfidenceLevel != 0 && (s.ConfidenceLevel < 1 || s.ConfidenceLevel > 5) {
			return fmt.Errorf("subject %q: confidence level %d outside 1-5", s.Name, s.ConfidenceLevel)
		}
	}
	return nil
}
