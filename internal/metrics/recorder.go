package metrics

import "time"

// LoadOutcome enumerates results of a load attempt.
type LoadOutcome string

const (
	OutcomeSuccess   LoadOutcome = "success"
	OutcomeUnchanged LoadOutcome = "unchanged"
	OutcomeInvalid   LoadOutcome = "invalid"
	OutcomeFailed    LoadOutcome = "failed"
)

// Recorder defines observability hooks for configuration loads.
type Recorder interface {
	ObserveLoadDuration(d time.Duration)
	IncLoadOutcome(outcome LoadOutcome)
	IncValidationError(rule string)
	SetLastSuccess(t time.Time)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveLoadDuration(time.Duration) {}
func (NoopRecorder) IncLoadOutcome(LoadOutcome)         {}
func (NoopRecorder) IncValidationError(string)          {}
func (NoopRecorder) SetLastSuccess(time.Time)           {}
