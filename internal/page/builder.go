package page

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/pagebuilder/internal/config"
	"git.home.luguber.info/inful/pagebuilder/internal/converter"
	derrors "git.home.luguber.info/inful/pagebuilder/internal/errors"
	"git.home.luguber.info/inful/pagebuilder/internal/logfields"
	"git.home.luguber.info/inful/pagebuilder/internal/metrics"
)

// outputMode is the permission used when the output file is created.
const outputMode = 0o644

// Builder assembles the page described by a Layout.
type Builder struct {
	layout    config.Layout
	converter converter.Converter
	recorder  metrics.Recorder
	logger    *slog.Logger
}

// NewBuilder creates a builder for layout using conv for every document.
func NewBuilder(layout config.Layout, conv converter.Converter) *Builder {
	return &Builder{
		layout:    layout,
		converter: conv,
		recorder:  metrics.NoopRecorder{},
		logger:    slog.Default(),
	}
}

// WithRecorder injects a metrics recorder.
func (b *Builder) WithRecorder(r metrics.Recorder) *Builder {
	if r != nil {
		b.recorder = r
	}
	return b
}

// WithLogger overrides the logger used for diagnostics.
func (b *Builder) WithLogger(l *slog.Logger) *Builder {
	if l != nil {
		b.logger = l
	}
	return b
}

// Build runs one complete build and overwrites the output file.
func (b *Builder) Build(ctx context.Context) (*Report, error) {
	report := &Report{
		BuildID:   uuid.NewString(),
		Converter: b.converter.Name(),
		Output:    b.layout.Output,
		Start:     time.Now(),
	}
	log := b.logger.With(logfields.BuildID(report.BuildID))
	log.Debug("Starting page build",
		logfields.Converter(report.Converter),
		"documents", len(b.layout.Documents),
		logfields.Path(b.layout.Output))

	page, err := b.build(ctx, log, report)
	report.Duration = time.Since(report.Start)
	b.recorder.ObserveBuildDuration(report.Duration)
	if err != nil {
		b.recorder.IncBuildOutcome(metrics.OutcomeFailed)
		return report, err
	}

	sum := sha256.Sum256(page)
	report.Bytes = len(page)
	report.SHA256 = hex.EncodeToString(sum[:])
	b.recorder.SetFragments(report.Converted())
	b.recorder.IncBuildOutcome(report.Outcome())

	log.Info("Page written",
		logfields.Path(report.Output),
		logfields.Fragments(report.Converted()),
		logfields.Failed(report.Failed()),
		logfields.Bytes(report.Bytes),
		logfields.SHA256(report.SHA256),
		logfields.DurationMS(float64(report.Duration.Microseconds())/1000))
	return report, nil
}

func (b *Builder) build(ctx context.Context, log *slog.Logger, report *Report) ([]byte, error) {
	fragments, err := b.convertAll(ctx, log, report)
	if err != nil {
		return nil, err
	}

	header, err := readTemplate(b.layout.Header)
	if err != nil {
		return nil, err
	}
	footer, err := readTemplate(b.layout.Footer)
	if err != nil {
		return nil, err
	}

	page := Assemble(header, fragments, footer)
	if err := os.WriteFile(b.layout.Output, page, outputMode); err != nil {
		return nil, derrors.OutputWriteFailed(b.layout.Output, err)
	}
	return page, nil
}

// convertAll converts every document sequentially and returns the successful
// fragments in document order.
func (b *Builder) convertAll(ctx context.Context, log *slog.Logger, report *Report) ([][]byte, error) {
	fragments := make([][]byte, 0, len(b.layout.Documents))
	log = log.With(logfields.Stage("convert"))
	for _, doc := range b.layout.Documents {
		if err := ctx.Err(); err != nil {
			return nil, derrors.BuildCanceled(err)
		}

		path := b.layout.DocumentPath(doc)
		res, err := b.converter.Convert(ctx, path)
		if err != nil {
			return nil, classifyConvertError(b.converter.Name(), err)
		}

		outcome := DocumentOutcome{
			Document: doc,
			Path:     path,
			ExitCode: res.ExitCode,
			Bytes:    len(res.Fragment()),
			Duration: res.Duration,
		}
		report.Documents = append(report.Documents, outcome)
		b.recorder.ObserveConversionDuration(doc, res.Duration, res.OK())
		b.recorder.IncConversionResult(res.OK())

		if !res.OK() {
			log.Error("Error converting", logfields.File(doc), logfields.ExitCode(res.ExitCode))
			continue
		}
		log.Debug("Converted document", logfields.File(doc), logfields.Bytes(outcome.Bytes))
		fragments = append(fragments, res.Output)
	}
	return fragments, nil
}

func classifyConvertError(name string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return derrors.BuildCanceled(err)
	}
	return derrors.ConverterUnavailable(name, err)
}

func readTemplate(path string) ([]byte, error) {
	// #nosec G304 -- template paths come from configuration.
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, derrors.TemplateReadFailed(path, err)
	}
	return data, nil
}
