package converter

import (
	"bytes"
	"context"
	"os"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"git.home.luguber.info/inful/pagebuilder/internal/frontmatter"
)

// Goldmark renders Markdown in-process. Failures are reported the way pandoc
// reports them: an unreadable source yields exit code 1 with the reason on
// stderr.
type Goldmark struct {
	md goldmark.Markdown
}

// NewGoldmark creates a GFM renderer with heading IDs and raw HTML passthrough.
func NewGoldmark() *Goldmark {
	return &Goldmark{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

func (g *Goldmark) Name() string { return "goldmark" }

func (g *Goldmark) Convert(ctx context.Context, path string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	start := time.Now()

	// #nosec G304 -- path is one of the configured source documents.
	src, err := os.ReadFile(path)
	if err != nil {
		return Result{ExitCode: 1, Stderr: []byte(err.Error()), Duration: time.Since(start)}, nil
	}

	var buf bytes.Buffer
	if err := g.md.Convert(frontmatter.Strip(src), &buf); err != nil {
		return Result{ExitCode: 1, Stderr: []byte(err.Error()), Duration: time.Since(start)}, nil
	}
	return Result{Output: buf.Bytes(), Duration: time.Since(start)}, nil
}
