package metrics

import "time"

// BuildOutcome labels the final status of a build.
type BuildOutcome string

const (
	// OutcomeSuccess means every document converted.
	OutcomeSuccess BuildOutcome = "success"
	// OutcomePartial means the page was written with at least one document skipped.
	OutcomePartial BuildOutcome = "partial"
	// OutcomeFailed means no page was written.
	OutcomeFailed BuildOutcome = "failed"
)

// Recorder defines observability hooks for build and conversion metrics.
type Recorder interface {
	ObserveConversionDuration(doc string, d time.Duration, ok bool)
	IncConversionResult(ok bool)
	ObserveBuildDuration(d time.Duration)
	IncBuildOutcome(outcome BuildOutcome)
	SetFragments(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveConversionDuration(string, time.Duration, bool) {}
func (NoopRecorder) IncConversionResult(bool)                              {}
func (NoopRecorder) ObserveBuildDuration(time.Duration)                    {}
func (NoopRecorder) IncBuildOutcome(BuildOutcome)                          {}
func (NoopRecorder) SetFragments(int)                                      {}
