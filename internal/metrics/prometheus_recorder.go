package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	buildDuration    prom.Histogram
	buildOutcome     *prom.CounterVec
	validationIssues prom.Counter
	exports          *prom.CounterVec
	lastSuccess      prom.Gauge
}

// NewPrometheusRecorder constructs the metrics and registers them with reg.
func NewPrometheusRecorder(reg prom.Registerer) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		buildDuration: prom.NewHistogram(prom.HistogramOpts{
			Namespace: "navconfig",
			Name:      "build_duration_seconds",
			Help:      "Duration of navigation document builds",
			Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		}),
		buildOutcome: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "navconfig",
			Name:      "build_outcomes_total",
			Help:      "Navigation builds by outcome",
		}, []string{"outcome"}),
		validationIssues: prom.NewCounter(prom.CounterOpts{
			Namespace: "navconfig",
			Name:      "validation_issues_total",
			Help:      "Validation issues reported by failed builds",
		}),
		exports: prom.NewCounterVec(prom.CounterOpts{
			Namespace: "navconfig",
			Name:      "exports_total",
			Help:      "Document exports by format and result",
		}, []string{"format", "result"}),
		lastSuccess: prom.NewGauge(prom.GaugeOpts{
			Namespace: "navconfig",
			Name:      "last_success_timestamp_seconds",
			Help:      "Unix time of the last successful build",
		}),
	}
	reg.MustRegister(pr.buildDuration, pr.buildOutcome, pr.validationIssues, pr.exports, pr.lastSuccess)
	return pr
}

func (p *PrometheusRecorder) ObserveBuildDuration(d time.Duration) {
	p.buildDuration.Observe(d.Seconds())
}

func (p *PrometheusRecorder) IncBuildOutcome(outcome OutcomeLabel) {
	p.buildOutcome.WithLabelValues(string(outcome)).Inc()
}

func (p *PrometheusRecorder) AddValidationIssues(n int) {
	if n > 0 {
		p.validationIssues.Add(float64(n))
	}
}

func (p *PrometheusRecorder) IncExport(format string, success bool) {
	res := "failed"
	if success {
		res = "success"
	}
	p.exports.WithLabelValues(format, res).Inc()
}

func (p *PrometheusRecorder) SetLastSuccess(t time.Time) {
	p.lastSuccess.Set(float64(t.Unix()))
}
