// Package config holds the page builder settings. Every field has a built-in
// default, so a run without any configuration file builds the standard
// pages/ + templates/ layout into index.html.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/pagebuilder/internal/errors"
	"git.home.luguber.info/inful/pagebuilder/internal/logfields"
)

// DefaultConfigFile is the configuration path used when --config is not given.
const DefaultConfigFile = "pagebuilder.yaml"

// Config represents the application configuration.
type Config struct {
	// Root is the directory all relative paths are resolved against. When
	// empty it is the directory holding the configuration file, or the
	// current directory when running on defaults.
	Root      string          `yaml:"root,omitempty"`
	Pages     PagesConfig     `yaml:"pages"`
	Templates TemplatesConfig `yaml:"templates"`
	Output    OutputConfig    `yaml:"output"`
	Converter ConverterConfig `yaml:"converter"`
	Metrics   MetricsConfig   `yaml:"metrics,omitempty"`
}

// PagesConfig lists the Markdown sources. Order is the concatenation order.
type PagesConfig struct {
	Directory string   `yaml:"directory"`
	Documents []string `yaml:"documents"`
}

// TemplatesConfig names the header and footer fragments wrapped around the pages.
type TemplatesConfig struct {
	Directory string `yaml:"directory"`
	Header    string `yaml:"header"`
	Footer    string `yaml:"footer"`
}

// OutputConfig represents output configuration.
type OutputConfig struct {
	Path string `yaml:"path"`
}

// ConverterConfig selects and parameterizes the Markdown to HTML converter.
type ConverterConfig struct {
	Backend Backend  `yaml:"backend"`
	Binary  string   `yaml:"binary,omitempty"`
	From    string   `yaml:"from,omitempty"`
	To      string   `yaml:"to,omitempty"`
	Args    []string `yaml:"args,omitempty"`
}

// MetricsConfig configures optional Prometheus textfile export.
type MetricsConfig struct {
	Textfile string `yaml:"textfile,omitempty"`
}

// Load loads configuration from the specified file, applies defaults and validates.
func Load(configPath string) (*Config, error) {
	if err := loadEnvFile(filepath.Dir(configPath)); err != nil {
		slog.Debug("No .env file loaded", logfields.Error(err))
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, derrors.ConfigNotFound(configPath)
	}

	// #nosec G304 -- configPath is supplied by the operator.
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, derrors.ConfigInvalid(configPath, fmt.Errorf("read config file: %w", err))
	}

	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, derrors.ConfigInvalid(configPath, fmt.Errorf("unmarshal config: %w", err))
	}

	if cfg.Root == "" {
		cfg.Root = filepath.Dir(configPath)
	} else if !filepath.IsAbs(cfg.Root) {
		cfg.Root = filepath.Join(filepath.Dir(configPath), cfg.Root)
	}

	if err := applyDefaults(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Debug("Configuration loaded", logfields.Path(configPath), "documents", len(cfg.Pages.Documents))
	return &cfg, nil
}

// LoadOrDefault loads configPath when it exists. When the path was not given
// explicitly and does not exist, the built-in defaults are returned. Either way
// .env is read from the directory of configPath.
func LoadOrDefault(configPath string, explicit bool) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) && !explicit {
		if envErr := loadEnvFile(filepath.Dir(configPath)); envErr != nil {
			slog.Debug("No .env file loaded", logfields.Error(envErr))
		}
		slog.Debug("No configuration file, using defaults", logfields.Path(configPath))
		return Default(), nil
	}
	return Load(configPath)
}
