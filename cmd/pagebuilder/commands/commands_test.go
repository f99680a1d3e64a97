package commands

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/pagebuilder/internal/config"
	derrors "git.home.luguber.info/inful/pagebuilder/internal/errors"
	"git.home.luguber.info/inful/pagebuilder/internal/testutil"
)

func newSite(t *testing.T) string {
	t.Helper()
	return testutil.NewSite(t)
}

func read(t *testing.T, path string) string {
	t.Helper()
	// #nosec G304 -- test path
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

const goldmarkPage = "<html><body><p>About.</p>\n<p>Install.</p>\n<p>Usage.</p>\n<p>Specs.</p>\n</body></html>"

func TestBuildCmd_DefaultsUnderDir(t *testing.T) {
	dir := newSite(t)
	root := &CLI{Dir: dir}

	err := (&BuildCmd{Converter: "goldmark"}).Run(&Global{}, root)
	require.NoError(t, err)
	assert.Equal(t, goldmarkPage, read(t, filepath.Join(dir, "index.html")))
}

func TestBuildCmd_ConfigFileAndOverrides(t *testing.T) {
	dir := newSite(t)
	cfgPath := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("pages:\n  documents: [specs.md, about.md]\nconverter:\n  backend: goldmark\n"), 0o600))
	out := filepath.Join(dir, "custom.html")
	metricsFile := filepath.Join(dir, "pagebuilder.prom")

	err := (&BuildCmd{Output: out, MetricsFile: metricsFile}).Run(&Global{}, &CLI{Config: cfgPath})
	require.NoError(t, err)
	assert.Equal(t, "<html><body><p>Specs.</p>\n<p>About.</p>\n</body></html>", read(t, out))
	assert.Contains(t, read(t, metricsFile), `pagebuilder_build_outcomes_total{outcome="success"} 1`)
}

func TestBuildCmd_RelativeOutputFollowsWorkingDir(t *testing.T) {
	dir := newSite(t)
	work := t.TempDir()
	prevWD, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(work))
	t.Cleanup(func() { _ = os.Chdir(prevWD) })

	err = (&BuildCmd{Output: "out.html", Converter: "goldmark"}).Run(&Global{}, &CLI{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, goldmarkPage, read(t, filepath.Join(work, "out.html")))
	testutil.NewFileAssertions(t, dir).AssertFileNotExists("out.html")
}

func TestBuildCmd_UnknownConverter(t *testing.T) {
	err := (&BuildCmd{Converter: "asciidoc"}).Run(&Global{}, &CLI{Dir: newSite(t)})
	require.Error(t, err)
	assert.True(t, derrors.IsCategory(err, derrors.CategoryValidation))
}

func TestBuildCmd_ExplicitConfigMissing(t *testing.T) {
	err := (&BuildCmd{}).Run(&Global{}, &CLI{Config: filepath.Join(t.TempDir(), "nope.yaml")})
	require.Error(t, err)
	assert.True(t, derrors.IsCategory(err, derrors.CategoryConfig))
}

func TestBuildCmd_MissingTemplate(t *testing.T) {
	dir := newSite(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "templates", "header.html")))

	err := (&BuildCmd{Converter: "goldmark"}).Run(&Global{}, &CLI{Dir: dir})
	require.Error(t, err)
	assert.Equal(t, 11, derrors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))
}

func TestRunBuild_Canceled(t *testing.T) {
	cfg := config.Default()
	cfg.Root = newSite(t)
	cfg.Converter.Backend = config.BackendGoldmark
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunBuild(ctx, cfg)
	require.Error(t, err)
	assert.True(t, derrors.IsCategory(err, derrors.CategoryRuntime))
}

func TestKongParse_DefaultCommandIsBuild(t *testing.T) {
	dir := newSite(t)
	cli := &CLI{}
	global := &Global{}
	parser, err := kong.New(cli, kong.Name("pagebuilder"), kong.Vars{"version": "test"}, kong.Bind(global), kong.Exit(func(int) {}))
	require.NoError(t, err)

	kctx, err := parser.Parse([]string{"-C", dir, "--converter", "goldmark"})
	require.NoError(t, err)
	assert.Equal(t, "build", kctx.Command())
	require.NotNil(t, global.Logger, "AfterApply should install the logger")

	require.NoError(t, kctx.Run(global, cli))
	assert.Equal(t, goldmarkPage, read(t, filepath.Join(dir, "index.html")))
}

func TestKongParse_Watch(t *testing.T) {
	cli := &CLI{}
	parser, err := kong.New(cli, kong.Vars{"version": "test"}, kong.Bind(&Global{}))
	require.NoError(t, err)

	kctx, err := parser.Parse([]string{"watch", "--debounce", "1s", "--converter", "goldmark"})
	require.NoError(t, err)
	assert.Equal(t, "watch", kctx.Command())
	assert.Equal(t, "goldmark", cli.Watch.Converter)
	assert.Equal(t, "1s", cli.Watch.Debounce.String())
}

func TestInitCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pagebuilder.yaml")
	root := &CLI{Config: path}

	require.NoError(t, (&InitCmd{}).Run(&Global{}, root))
	require.Error(t, (&InitCmd{}).Run(&Global{}, root))
	require.NoError(t, (&InitCmd{Force: true}).Run(&Global{}, root))
	assert.True(t, strings.Contains(read(t, path), "about.md"))
}

func TestParseLogLevel(t *testing.T) {
	t.Setenv("PAGEBUILDER_LOG_LEVEL", "")
	assert.Equal(t, slog.LevelWarn, parseLogLevel(false))
	assert.Equal(t, slog.LevelDebug, parseLogLevel(true))

	t.Setenv("PAGEBUILDER_LOG_LEVEL", "info")
	assert.Equal(t, slog.LevelInfo, parseLogLevel(true))

	t.Setenv("PAGEBUILDER_LOG_LEVEL", "ERROR")
	assert.Equal(t, slog.LevelError, parseLogLevel(false))
}

func TestRunBuild_UnvalidatedBackendIsInternal(t *testing.T) {
	cfg := config.Default()
	cfg.Root = newSite(t)
	cfg.Converter.Backend = "asciidoc"

	_, err := RunBuild(context.Background(), cfg)
	require.Error(t, err)
	assert.Equal(t, 10, derrors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))
}
