package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	loadDuration     prom.Histogram
	loadOutcomes     *prom.CounterVec
	validationErrors *prom.CounterVec
	lastSuccess      prom.Gauge
}

// NewPrometheusRecorder constructs the collectors and registers them on reg.
// A nil reg gets a fresh registry.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		loadDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "sitecfg",
			Name:      "load_duration_seconds",
			Help:      "Duration of site configuration loads",
			Buckets:   prom.ExponentialBuckets(0.0005, 2, 12),
		}),
		loadOutcomes: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sitecfg",
			Name:      "loads_total",
			Help:      "Site configuration loads by outcome",
		}, []string{"outcome"}),
		validationErrors: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "sitecfg",
			Name:      "validation_errors_total",
			Help:      "Validation errors by violated rule",
		}, []string{"rule"}),
		lastSuccess: prom.NewGauge(prom.GaugeOpts{
			Namespace: "sitecfg",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful load",
		}),
	}
	reg.MustRegister(pr.loadDuration, pr.loadOutcomes, pr.validationErrors, pr.lastSuccess)
	return pr
}

func (p *PrometheusRecorder) ObserveLoadDuration(d time.Duration) {
	if p == nil {
		return
	}
	p.loadDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncLoadOutcome(outcome LoadOutcome) {
	if p == nil {
		return
	}
	p.loadOutcomes.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) IncValidationError(rule string) {
	if p == nil {
		return
	}
	p.validationErrors.WithLabelValues(rule).Inc()
}

func (p *PrometheusRecorder) SetLastSuccess(t time.Time) {
	if p == nil {
		return
	}
	p.lastSuccess.Set(float64(t.Unix()))
}
