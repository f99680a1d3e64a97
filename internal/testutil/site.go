// Package testutil provides filesystem fixtures and assertions shared by tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// StandardSite is the default pages/ + templates/ layout with one short
// paragraph per document.
func StandardSite() map[string]string {
	return map[string]string{
		"pages/about.md":        "About.",
		"pages/install.md":      "Install.",
		"pages/usage.md":        "Usage.",
		"pages/specs.md":        "Specs.",
		"templates/header.html": "<html><body>",
		"templates/footer.html": "</body></html>",
	}
}

// NewSite writes StandardSite into a fresh temp directory and returns it.
func NewSite(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	WriteFiles(t, dir, StandardSite())
	return dir
}

// WriteFiles writes files (relative path -> content) under baseDir, creating
// parent directories.
func WriteFiles(t *testing.T, baseDir string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		p := filepath.Join(baseDir, rel)
		if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
			t.Fatalf("mkdir %s: %v", filepath.Dir(p), err)
		}
		if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
	}
}

// FileAssertions provides utilities for asserting file system state in tests.
type FileAssertions struct {
	t       *testing.T
	baseDir string
}

// NewFileAssertions creates a new file assertions helper rooted at baseDir.
func NewFileAssertions(t *testing.T, baseDir string) *FileAssertions {
	return &FileAssertions{t: t, baseDir: baseDir}
}

func (fa *FileAssertions) path(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(fa.baseDir, p)
}

// AssertFileContent validates that a file exists with exactly the given content.
func (fa *FileAssertions) AssertFileContent(p, want string) *FileAssertions {
	fa.t.Helper()
	// #nosec G304 -- test path
	data, err := os.ReadFile(fa.path(p))
	if err != nil {
		fa.t.Errorf("Failed to read file %s: %v", fa.path(p), err)
		return fa
	}
	if string(data) != want {
		fa.t.Errorf("File %s content mismatch:\n got: %q\nwant: %q", fa.path(p), string(data), want)
	}
	return fa
}

// AssertFileNotExists validates that a file does not exist.
func (fa *FileAssertions) AssertFileNotExists(p string) *FileAssertions {
	fa.t.Helper()
	if _, err := os.Stat(fa.path(p)); err == nil {
		fa.t.Errorf("Expected file to not exist: %s", fa.path(p))
	}
	return fa
}
