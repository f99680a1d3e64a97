package config

import (
	derrors "git.home.luguber.info/inful/pagebuilder/internal/errors"
)

// Validate checks the configuration for values the builder cannot work with.
func (c *Config) Validate() error {
	if len(c.Pages.Documents) == 0 {
		return derrors.ValidationFailed("pages.documents", "at least one document is required")
	}
	seen := make(map[string]struct{}, len(c.Pages.Documents))
	for _, doc := range c.Pages.Documents {
		if doc == "" {
			return derrors.ValidationFailed("pages.documents", "document names must not be empty")
		}
		if _, dup := seen[doc]; dup {
			return derrors.ValidationFailed("pages.documents", "duplicate document "+doc)
		}
		seen[doc] = struct{}{}
	}
	if c.Templates.Header == "" {
		return derrors.ValidationFailed("templates.header", "header template is required")
	}
	if c.Templates.Footer == "" {
		return derrors.ValidationFailed("templates.footer", "footer template is required")
	}
	if c.Output.Path == "" {
		return derrors.ValidationFailed("output.path", "output path is required")
	}
	switch c.Converter.Backend {
	case BackendPandoc:
		if c.Converter.Binary == "" {
			return derrors.ValidationFailed("converter.binary", "binary is required for the pandoc backend")
		}
	case BackendGoldmark:
	default:
		return derrors.ValidationFailed("converter.backend", "unknown backend "+string(c.Converter.Backend))
	}
	return nil
}
