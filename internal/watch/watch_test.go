package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/pagebuilder/internal/config"
	"git.home.luguber.info/inful/pagebuilder/internal/testutil"
)

func testLayout(t *testing.T) config.Layout {
	t.Helper()
	cfg := config.Default()
	cfg.Root = testutil.NewSite(t)
	l, err := cfg.Resolve()
	require.NoError(t, err)
	return l
}

func TestNew_TracksDocumentsAndTemplates(t *testing.T) {
	l := testLayout(t)
	w := New(l, func(context.Context) error { return nil })

	assert.ElementsMatch(t, []string{l.PagesDir, filepath.Dir(l.Header)}, w.Dirs())
	assert.True(t, w.Relevant(l.DocumentPath("usage.md")))
	assert.True(t, w.Relevant(l.Footer))
	assert.False(t, w.Relevant(filepath.Join(l.PagesDir, "notes.txt")))
	assert.False(t, w.Relevant(l.Output))
}

func waitFor(t *testing.T, builds <-chan struct{}, timeout time.Duration) bool {
	t.Helper()
	select {
	case <-builds:
		return true
	case <-time.After(timeout):
		return false
	}
}

func TestRun_RebuildsOnRelevantChanges(t *testing.T) {
	l := testLayout(t)
	builds := make(chan struct{}, 10)
	var count atomic.Int32
	w := New(l, func(context.Context) error {
		count.Add(1)
		builds <- struct{}{}
		return errors.New("build errors do not stop watching")
	}).WithDebounce(20 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.True(t, waitFor(t, builds, 2*time.Second), "initial build")

	require.NoError(t, os.WriteFile(filepath.Join(l.PagesDir, "notes.txt"), []byte("ignored"), 0o600))
	assert.False(t, waitFor(t, builds, 300*time.Millisecond), "unrelated file must not trigger")

	require.NoError(t, os.WriteFile(l.DocumentPath("about.md"), []byte("About again."), 0o600))
	require.True(t, waitFor(t, builds, 2*time.Second), "document change")

	require.NoError(t, os.WriteFile(l.Header, []byte("<html>"), 0o600))
	require.True(t, waitFor(t, builds, 2*time.Second), "template change")

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.GreaterOrEqual(t, count.Load(), int32(3))
}

func TestDebouncerCoalesces(t *testing.T) {
	w := &Watcher{debounce: 30 * time.Millisecond}
	req := make(chan struct{}, 1)
	trigger, stop := w.debouncer(req)
	defer stop()

	for i := 0; i < 5; i++ {
		trigger()
	}
	select {
	case <-req:
	case <-time.After(time.Second):
		t.Fatal("expected one rebuild request")
	}
	select {
	case <-req:
		t.Fatal("burst should produce a single request")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestRun_MissingDirectory(t *testing.T) {
	l := testLayout(t)
	l.PagesDir = filepath.Join(l.PagesDir, "gone")
	w := New(l, func(context.Context) error { return nil })

	err := w.Run(context.Background())
	require.Error(t, err)
}
