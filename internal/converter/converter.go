// Package converter turns one Markdown source into an HTML fragment.
//
// Two outcomes are kept apart on purpose. A Result whose OK method reports
// false is a per-document failure: the caller logs it, skips the fragment and
// carries on. A returned error means the environment itself is broken (the
// converter binary is missing, the build was canceled) and the build stops.
package converter

import (
	"context"
	"fmt"
	"time"

	"git.home.luguber.info/inful/pagebuilder/internal/config"
)

// Converter converts a single Markdown file to an HTML fragment.
type Converter interface {
	Name() string
	Convert(ctx context.Context, path string) (Result, error)
}

// Result is the outcome of converting one document.
type Result struct {
	// Output is the converter's standard output; the fragment on success.
	Output []byte
	// ExitCode is 0 on success. Any other value marks the document as failed.
	ExitCode int
	// Stderr holds diagnostics emitted by the converter, if any.
	Stderr   []byte
	Duration time.Duration
}

// OK reports whether the conversion succeeded.
func (r Result) OK() bool { return r.ExitCode == 0 }

// Fragment returns the HTML contributed to the page: the output on success,
// nothing on failure.
func (r Result) Fragment() []byte {
	if !r.OK() {
		return nil
	}
	return r.Output
}

// New builds the converter selected by cfg.
func New(cfg config.ConverterConfig) (Converter, error) {
	switch cfg.Backend {
	case config.BackendPandoc, "":
		return NewPandoc(cfg.Binary, cfg.From, cfg.To, cfg.Args...), nil
	case config.BackendGoldmark:
		return NewGoldmark(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
