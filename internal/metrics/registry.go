// Package metrics exposes Prometheus metrics for judgment runs.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mesa-judge/internal/core/domain"
)

// Registry holds every collector on a private prometheus.Registry so tests
// can create as many as they like.
type Registry struct {
	reg *prometheus.Registry

	RunsTotal        *prometheus.CounterVec
	RunDuration      prometheus.Histogram
	Classifications  *prometheus.GaugeVec
	CampaignFailures prometheus.Counter
	OverridesApplied prometheus.Gauge
	Anomalies        *prometheus.CounterVec
}

// NewRegistry creates and registers all collectors.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		RunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "judgment_runs_total",
				Help: "Judgment runs by result",
			},
			[]string{"result"},
		),
		RunDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "judgment_run_duration_seconds",
				Help:    "Duration of judgment runs in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5},
			},
		),
		Classifications: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "judgment_campaigns",
				Help: "Campaigns per effective classification in the last run",
			},
			[]string{"classification"},
		),
		CampaignFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "judgment_campaign_failures_total",
				Help: "Campaigns skipped because of invalid input",
			},
		),
		OverridesApplied: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "judgment_overrides_applied",
				Help: "Manual overrides applied in the last run",
			},
		),
		Anomalies: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "anomaly_findings_total",
				Help: "Anomalous findings by metric and severity",
			},
			[]string{"metric", "severity"},
		),
	}
	r.reg.MustRegister(
		r.RunsTotal,
		r.RunDuration,
		r.Classifications,
		r.CampaignFailures,
		r.OverridesApplied,
		r.Anomalies,
		collectors.NewGoCollector(),
	)
	return r
}

// ObserveRun records a finished run.
func (r *Registry) ObserveRun(report *domain.Report, elapsed time.Duration) {
	r.RunsTotal.WithLabelValues("ok").Inc()
	r.RunDuration.Observe(elapsed.Seconds())
	r.Classifications.WithLabelValues(string(domain.ClassificationStop)).Set(float64(report.Summary.Stop))
	r.Classifications.WithLabelValues(string(domain.ClassificationReplace)).Set(float64(report.Summary.Replace))
	r.Classifications.WithLabelValues(string(domain.ClassificationContinue)).Set(float64(report.Summary.Continue))
	r.Classifications.WithLabelValues(string(domain.ClassificationCheck)).Set(float64(report.Summary.Check))
	r.CampaignFailures.Add(float64(len(report.Failures)))

	applied := 0
	for _, res := range report.Results {
		if res.Overridden() {
			applied++
		}
	}
	r.OverridesApplied.Set(float64(applied))
}

// ObserveRunError records a run that did not complete.
func (r *Registry) ObserveRunError() {
	r.RunsTotal.WithLabelValues("error").Inc()
}

// ObserveAnomalies counts anomalous findings.
func (r *Registry) ObserveAnomalies(findings []domain.AnomalyFinding) {
	for _, f := range findings {
		if f.IsAnomaly {
			r.Anomalies.WithLabelValues(string(f.Metric), string(f.Severity)).Inc()
		}
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}
