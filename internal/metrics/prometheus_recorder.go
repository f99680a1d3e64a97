package metrics

import (
	"fmt"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	conversionDuration *prom.HistogramVec
	conversionResults  *prom.CounterVec
	buildDuration      prom.Histogram
	buildOutcome       *prom.CounterVec
	fragments          prom.Gauge
}

// NewPrometheusRecorder constructs the metrics and registers them on reg.
func NewPrometheusRecorder(reg prom.Registerer) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		conversionDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: "pagebuilder",
			Name:      "conversion_duration_seconds",
			Help:      "Duration of individual document conversions",
			Buckets:   prom.DefBuckets,
		}, []string{"document", "result"}),
		conversionResults: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "pagebuilder",
			Name:      "conversion_results_total",
			Help:      "Document conversions by success/failure",
		}, []string{"result"}),
		buildDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "pagebuilder",
			Name:      "build_duration_seconds",
			Help:      "Total build duration",
			Buckets:   prom.DefBuckets,
		}),
		buildOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "pagebuilder",
			Name:      "build_outcomes_total",
			Help:      "Build outcomes by final status",
		}, []string{"outcome"}),
		fragments: prom.NewGauge(prom.GaugeOpts{
			Namespace: "pagebuilder",
			Name:      "fragments",
			Help:      "Fragments included in the last assembled page",
		}),
	}
	reg.MustRegister(pr.conversionDuration, pr.conversionResults, pr.buildDuration, pr.buildOutcome, pr.fragments)
	return pr
}

func resultLabel(ok bool) string {
	if ok {
		return "success"
	}
	return "failed"
}

func (p *PrometheusRecorder) ObserveConversionDuration(doc string, d time.Duration, ok bool) {
	if p == nil {
		return
	}
	p.conversionDuration.WithLabelValues(doc, resultLabel(ok)).Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncConversionResult(ok bool) {
	if p == nil {
		return
	}
	p.conversionResults.WithLabelValues(resultLabel(ok)).Inc()
}

func (p *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.buildDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncBuildOutcome(outcome BuildOutcome) {
	if p == nil {
		return
	}
	p.buildOutcome.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) SetFragments(n int) {
	if p == nil {
		return
	}
	p.fragments.Set(float64(n))
}

// WriteTextfile writes all metrics gathered from g in the text exposition
// format, replacing path atomically.
func WriteTextfile(path string, g prom.Gatherer) error {
	if err := prom.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
