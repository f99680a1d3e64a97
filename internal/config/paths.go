package config

import (
	"fmt"
	"path/filepath"
)

// Layout carries the explicit locations used by one build. Nothing in the
// builder depends on the process working directory.
type Layout struct {
	PagesDir  string
	Documents []string
	Header    string
	Footer    string
	Output    string
}

// Resolve turns the configured (possibly relative) locations into absolute paths.
func (c *Config) Resolve() (Layout, error) {
	root, err := filepath.Abs(c.Root)
	if err != nil {
		return Layout{}, fmt.Errorf("resolve root %q: %w", c.Root, err)
	}
	join := func(base, p string) string {
		if filepath.IsAbs(p) {
			return filepath.Clean(p)
		}
		return filepath.Join(base, p)
	}
	templates := join(root, c.Templates.Directory)
	return Layout{
		PagesDir:  join(root, c.Pages.Directory),
		Documents: append([]string(nil), c.Pages.Documents...),
		Header:    join(templates, c.Templates.Header),
		Footer:    join(templates, c.Templates.Footer),
		Output:    join(root, c.Output.Path),
	}, nil
}

// DocumentPath returns the absolute path of a source document.
func (l Layout) DocumentPath(doc string) string {
	if filepath.IsAbs(doc) {
		return doc
	}
	return filepath.Join(l.PagesDir, doc)
}
