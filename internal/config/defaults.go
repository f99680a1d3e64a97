package config

import "fmt"

// Built-in defaults reproduce the standard layout:
//
//	pages/{about,install,usage,specs}.md -> templates/header.html + ... + templates/footer.html -> index.html
var (
	DefaultDocuments    = []string{"about.md", "install.md", "usage.md", "specs.md"}
	DefaultPagesDir     = "pages"
	DefaultTemplatesDir = "templates"
	DefaultHeader       = "header.html"
	DefaultFooter       = "footer.html"
	DefaultOutput       = "index.html"
	DefaultBinary       = "pandoc"
	DefaultFromFormat   = "markdown"
	DefaultToFormat     = "html"
)

// Default returns a configuration populated entirely with built-in defaults.
func Default() *Config {
	cfg := &Config{Root: "."}
	// applyDefaults cannot fail on a zero config.
	_ = applyDefaults(cfg)
	return cfg
}

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

type pagesDefaults struct{}

func (pagesDefaults) Domain() string { return "pages" }

func (pagesDefaults) ApplyDefaults(cfg *Config) error {
	if cfg.Pages.Directory == "" {
		cfg.Pages.Directory = DefaultPagesDir
	}
	if len(cfg.Pages.Documents) == 0 {
		cfg.Pages.Documents = append([]string(nil), DefaultDocuments...)
	}
	return nil
}

type templatesDefaults struct{}

func (templatesDefaults) Domain() string { return "templates" }

func (templatesDefaults) ApplyDefaults(cfg *Config) error {
	if cfg.Templates.Directory == "" {
		cfg.Templates.Directory = DefaultTemplatesDir
	}
	if cfg.Templates.Header == "" {
		cfg.Templates.Header = DefaultHeader
	}
	if cfg.Templates.Footer == "" {
		cfg.Templates.Footer = DefaultFooter
	}
	return nil
}

type outputDefaults struct{}

func (outputDefaults) Domain() string { return "output" }

func (outputDefaults) ApplyDefaults(cfg *Config) error {
	if cfg.Output.Path == "" {
		cfg.Output.Path = DefaultOutput
	}
	return nil
}

type converterDefaults struct{}

func (converterDefaults) Domain() string { return "converter" }

// ApplyDefaults normalizes the backend name; an unknown backend is kept
// verbatim so Validate can report it.
func (converterDefaults) ApplyDefaults(cfg *Config) error {
	if cfg.Converter.Backend == "" {
		cfg.Converter.Backend = BackendPandoc
	} else if b := NormalizeBackend(string(cfg.Converter.Backend)); b != "" {
		cfg.Converter.Backend = b
	}
	if cfg.Converter.Binary == "" {
		cfg.Converter.Binary = DefaultBinary
	}
	if cfg.Converter.From == "" {
		cfg.Converter.From = DefaultFromFormat
	}
	if cfg.Converter.To == "" {
		cfg.Converter.To = DefaultToFormat
	}
	return nil
}

var appliers = []DefaultApplier{
	pagesDefaults{},
	templatesDefaults{},
	outputDefaults{},
	converterDefaults{},
}

func applyDefaults(cfg *Config) error {
	if cfg.Root == "" {
		cfg.Root = "."
	}
	for _, a := range appliers {
		if err := a.ApplyDefaults(cfg); err != nil {
			return fmt.Errorf("apply %s defaults: %w", a.Domain(), err)
		}
	}
	return nil
}
