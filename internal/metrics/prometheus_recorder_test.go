package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)

	pr.ObserveConversionDuration("about.md", 150*time.Millisecond, true)
	pr.ObserveConversionDuration("install.md", 20*time.Millisecond, false)
	pr.IncConversionResult(true)
	pr.IncConversionResult(true)
	pr.IncConversionResult(false)
	pr.ObserveBuildDuration(500 * time.Millisecond)
	pr.IncBuildOutcome(OutcomePartial)
	pr.SetFragments(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(pr.conversionResults.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pr.conversionResults.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(pr.buildOutcome.WithLabelValues("partial")))
	assert.Equal(t, 3.0, testutil.ToFloat64(pr.fragments))

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, mfs, 5)
}

func TestNilPrometheusRecorderIsSafe(t *testing.T) {
	var pr *PrometheusRecorder
	pr.ObserveConversionDuration("x", time.Second, true)
	pr.IncConversionResult(false)
	pr.ObserveBuildDuration(time.Second)
	pr.IncBuildOutcome(OutcomeFailed)
	pr.SetFragments(1)
}

func TestNoopRecorderSatisfiesInterface(t *testing.T) {
	var r Recorder = NoopRecorder{}
	r.IncBuildOutcome(OutcomeSuccess)
}

func TestWriteTextfile(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.IncBuildOutcome(OutcomeSuccess)
	pr.SetFragments(4)

	path := filepath.Join(t.TempDir(), "pagebuilder.prom")
	require.NoError(t, WriteTextfile(path, reg))

	// #nosec G304 -- test path
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.Contains(text, `pagebuilder_build_outcomes_total{outcome="success"} 1`), text)
	assert.True(t, strings.Contains(text, "pagebuilder_fragments 4"), text)
}
