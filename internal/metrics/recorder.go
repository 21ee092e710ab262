package metrics

import "time"

// OutcomeLabel enumerates build outcomes for counters.
type OutcomeLabel string

const (
	OutcomeSuccess OutcomeLabel = "success"
	OutcomeInvalid OutcomeLabel = "invalid"
	OutcomeFailed  OutcomeLabel = "failed"
)

// Recorder defines observability hooks for document builds.
type Recorder interface {
	ObserveBuildDuration(d time.Duration)
	IncBuildOutcome(outcome OutcomeLabel)
	AddValidationIssues(n int)
	IncExport(format string, success bool)
	SetLastSuccess(t time.Time)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveBuildDuration(time.Duration) {}
func (NoopRecorder) IncBuildOutcome(OutcomeLabel)       {}
func (NoopRecorder) AddValidationIssues(int)            {}
func (NoopRecorder) IncExport(string, bool)             {}
func (NoopRecorder) SetLastSuccess(time.Time)           {}
