package config

import "strings"

// Backend selects the Markdown to HTML converter implementation.
type Backend string

const (
	// BackendPandoc invokes the external pandoc executable once per document.
	BackendPandoc Backend = "pandoc"
	// BackendGoldmark renders in-process with goldmark (GFM); no external binary needed.
	BackendGoldmark Backend = "goldmark"
)

// NormalizeBackend returns the canonical backend for a user supplied name, or
// "" when the name is not recognized.
func NormalizeBackend(name string) Backend {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pandoc", "external":
		return BackendPandoc
	case "goldmark", "builtin", "internal":
		return BackendGoldmark
	default:
		return ""
	}
}
