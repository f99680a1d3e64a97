package commands

import (
	"context"
	"log/slog"
	"path/filepath"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/pagebuilder/internal/config"
	"git.home.luguber.info/inful/pagebuilder/internal/converter"
	derrors "git.home.luguber.info/inful/pagebuilder/internal/errors"
	"git.home.luguber.info/inful/pagebuilder/internal/logfields"
	"git.home.luguber.info/inful/pagebuilder/internal/metrics"
	"git.home.luguber.info/inful/pagebuilder/internal/page"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output      string `short:"o" help:"Output file, relative to the working directory (overrides output.path)"`
	Converter   string `name:"converter" help:"Converter backend (pandoc|goldmark). Overrides converter.backend."`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus metrics in text format to this file after the build"`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	if err := b.apply(cfg); err != nil {
		return err
	}
	_, err = RunBuild(g.ctx(), cfg)
	return err
}

// apply layers command line overrides over the loaded configuration.
func (b *BuildCmd) apply(cfg *config.Config) error {
	if b.Output != "" {
		out, err := filepath.Abs(b.Output)
		if err != nil {
			return derrors.ValidationFailed("--output", err.Error())
		}
		cfg.Output.Path = out
	}
	if b.Converter != "" {
		backend := config.NormalizeBackend(b.Converter)
		if backend == "" {
			return derrors.ValidationFailed("--converter", "unknown backend "+b.Converter)
		}
		cfg.Converter.Backend = backend
		slog.Debug("Converter overridden via CLI flag", logfields.Converter(string(backend)))
	}
	if b.MetricsFile != "" {
		cfg.Metrics.Textfile = b.MetricsFile
	}
	return cfg.Validate()
}

// RunBuild performs one build for cfg and exports metrics when configured.
func RunBuild(ctx context.Context, cfg *config.Config) (*page.Report, error) {
	builder, reg, err := newBuilder(cfg)
	if err != nil {
		return nil, err
	}

	report, buildErr := builder.Build(ctx)
	if reg != nil {
		if err := metrics.WriteTextfile(cfg.Metrics.Textfile, reg); err != nil {
			slog.Warn("Failed to write metrics", logfields.Path(cfg.Metrics.Textfile), logfields.Error(err))
		}
	}
	return report, buildErr
}

// newBuilder wires layout, converter and recorder. The returned registry is
// nil unless a metrics textfile is configured.
func newBuilder(cfg *config.Config) (*page.Builder, *prom.Registry, error) {
	layout, err := cfg.Resolve()
	if err != nil {
		return nil, nil, derrors.ConfigInvalid("root", err)
	}
	// cfg has been validated, so an unknown backend here is a wiring bug.
	conv, err := converter.New(cfg.Converter)
	if err != nil {
		return nil, nil, derrors.InternalError("select converter", err)
	}

	builder := page.NewBuilder(layout, conv)
	if cfg.Metrics.Textfile == "" {
		return builder, nil, nil
	}
	reg := prom.NewRegistry()
	builder.WithRecorder(metrics.NewPrometheusRecorder(reg))
	return builder, reg, nil
}
