package converter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"git.home.luguber.info/inful/pagebuilder/internal/logfields"
)

// Pandoc invokes an external pandoc-compatible binary:
//
//	<binary> -f <from> -t <to> [args...] <path>
type Pandoc struct {
	binary string
	from   string
	to     string
	args   []string
}

// NewPandoc creates a pandoc converter. Empty values fall back to
// "pandoc", "markdown" and "html".
func NewPandoc(binary, from, to string, args ...string) *Pandoc {
	if binary == "" {
		binary = "pandoc"
	}
	if from == "" {
		from = "markdown"
	}
	if to == "" {
		to = "html"
	}
	return &Pandoc{binary: binary, from: from, to: to, args: args}
}

func (p *Pandoc) Name() string { return "pandoc" }

// Args returns the full argument list used for path.
func (p *Pandoc) Args(path string) []string {
	args := make([]string, 0, len(p.args)+5)
	args = append(args, "-f", p.from, "-t", p.to)
	args = append(args, p.args...)
	return append(args, path)
}

// Convert runs the binary and captures its output. The working directory is
// inherited; path is passed explicitly.
func (p *Pandoc) Convert(ctx context.Context, path string) (Result, error) {
	bin, err := exec.LookPath(p.binary)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrConverterNotFound, err)
	}

	// #nosec G204 -- binary and arguments come from operator configuration.
	cmd := exec.CommandContext(ctx, bin, p.Args(path)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err = cmd.Run()
	res := Result{
		Output:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
		Duration: time.Since(start),
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return Result{}, ctxErr
	}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		// -1 when the process was killed by a signal.
		res.ExitCode = exitErr.ExitCode()
	default:
		return Result{}, fmt.Errorf("%w: %w", ErrConverterFailed, err)
	}

	if len(res.Stderr) > 0 {
		slog.Debug("converter stderr", logfields.Converter(p.Name()), logfields.File(path), "output", string(res.Stderr))
	}
	return res, nil
}
