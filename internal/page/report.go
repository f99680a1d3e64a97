package page

import (
	"time"

	"git.home.luguber.info/inful/pagebuilder/internal/metrics"
)

// DocumentOutcome records the conversion of one source document.
type DocumentOutcome struct {
	Document string
	Path     string
	ExitCode int
	Bytes    int
	Duration time.Duration
}

// OK reports whether the document contributed a fragment.
func (d DocumentOutcome) OK() bool { return d.ExitCode == 0 }

// Report summarizes one build.
type Report struct {
	BuildID   string
	Converter string
	Documents []DocumentOutcome
	Output    string
	Bytes     int
	SHA256    string
	Start     time.Time
	Duration  time.Duration
}

// Converted returns the number of documents that produced a fragment.
func (r *Report) Converted() int {
	n := 0
	for _, d := range r.Documents {
		if d.OK() {
			n++
		}
	}
	return n
}

// Failed returns the number of documents left out of the page.
func (r *Report) Failed() int {
	return len(r.Documents) - r.Converted()
}

// FailedDocuments lists the documents left out, in source order.
func (r *Report) FailedDocuments() []string {
	var out []string
	for _, d := range r.Documents {
		if !d.OK() {
			out = append(out, d.Document)
		}
	}
	return out
}

// Outcome classifies a written page for metrics.
func (r *Report) Outcome() metrics.BuildOutcome {
	if r.Failed() > 0 {
		return metrics.OutcomePartial
	}
	return metrics.OutcomeSuccess
}
