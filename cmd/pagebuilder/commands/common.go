package commands

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/pagebuilder/internal/config"
	"git.home.luguber.info/inful/pagebuilder/internal/logfields"
)

// Global carries state shared by all subcommands.
type Global struct {
	Context context.Context
	Logger  *slog.Logger
}

func (g *Global) ctx() context.Context {
	if g == nil || g.Context == nil {
		return context.Background()
	}
	return g.Context
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (default: pagebuilder.yaml in the working directory, optional)"`
	Dir     string           `short:"C" name:"dir" help:"Root directory holding pages/ and templates/ (overrides config root)"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build BuildCmd `cmd:"" default:"withargs" help:"Build the page (default command)"`
	Watch WatchCmd `cmd:"" help:"Build, then rebuild whenever a page or template changes"`
	Init  InitCmd  `cmd:"" help:"Write a configuration file with the built-in defaults"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply(g *Global) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(c.Verbose)}))
	slog.SetDefault(logger)
	if g != nil {
		g.Logger = logger
	}
	return nil
}

// parseLogLevel picks the log level. A successful build is silent at the
// default level; -v selects debug; PAGEBUILDER_LOG_LEVEL wins over both.
func parseLogLevel(verbose bool) slog.Level {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("PAGEBUILDER_LOG_LEVEL"))) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// loadConfig loads the configuration named by --config, falling back to the
// built-in defaults when no file exists at the default location, then applies
// the --dir override.
func (c *CLI) loadConfig() (*config.Config, error) {
	path, explicit := c.Config, c.Config != ""
	if !explicit {
		path = config.DefaultConfigFile
		if c.Dir != "" {
			path = filepath.Join(c.Dir, config.DefaultConfigFile)
		}
	}
	cfg, err := config.LoadOrDefault(path, explicit)
	if err != nil {
		return nil, err
	}
	if c.Dir != "" {
		cfg.Root = c.Dir
	}
	slog.Debug("Configuration resolved", logfields.Path(path), "root", cfg.Root)
	return cfg, nil
}
