package commands

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/pagebuilder/internal/logfields"
	"git.home.luguber.info/inful/pagebuilder/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	BuildCmd `embed:""`
	Debounce time.Duration `help:"Quiet period before a rebuild" default:"300ms"`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	if err := w.apply(cfg); err != nil {
		return err
	}
	layout, err := cfg.Resolve()
	if err != nil {
		return err
	}

	slog.Info("Watching for changes", logfields.Path(layout.PagesDir), "templates", filepath.Dir(layout.Header))
	watcher := watch.New(layout, func(ctx context.Context) error {
		report, err := RunBuild(ctx, cfg)
		if err != nil {
			return err
		}
		slog.Info("Rebuilt page", logfields.Path(report.Output), logfields.Fragments(report.Converted()), logfields.Failed(report.Failed()))
		return nil
	}).WithDebounce(w.Debounce)

	return watcher.Run(g.ctx())
}
