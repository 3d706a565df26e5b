package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	filesIngested    *prometheus.CounterVec
	filesSkipped     *prometheus.CounterVec
	rows             *prometheus.GaugeVec
	analysisRuns     *prometheus.CounterVec
	analysisDuration prometheus.Histogram
	findings         *prometheus.GaugeVec
	apiRequests      *prometheus.CounterVec
	apiLatency       prometheus.Histogram
}

// NewPrometheusMetrics registers the pipeline metrics with reg. A nil reg
// uses the default registerer.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		filesIngested: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ingest_files_total",
				Help: "Total number of transaction files read",
			},
			[]string{"schema"},
		),
		filesSkipped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ingest_files_skipped_total",
				Help: "Total number of transaction files skipped",
			},
			[]string{"reason"},
		),
		rows: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "analysis_rows",
				Help: "Rows in the most recent run by pipeline stage",
			},
			[]string{"stage"},
		),
		analysisRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "analysis_runs_total",
				Help: "Total number of analysis runs",
			},
			[]string{"status"},
		),
		analysisDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "analysis_duration_milliseconds",
				Help:    "Analysis run duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		findings: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "analysis_findings",
				Help: "Findings in the most recent completed run by kind",
			},
			[]string{"kind"},
		),
		apiRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_analysis_requests_total",
				Help: "Total number of analysis API requests",
			},
			[]string{"endpoint", "status"},
		),
		apiLatency: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "api_analysis_latency_milliseconds",
				Help:    "Analysis API request latency in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "ingest.file.read":
		m.filesIngested.WithLabelValues(tags["schema"]).Inc()
	case "ingest.file.skipped":
		if reason := tags["reason"]; reason != "" {
			m.filesSkipped.WithLabelValues(reason).Inc()
		}
	case "analysis.run":
		if status := tags["status"]; status != "" {
			m.analysisRuns.WithLabelValues(status).Inc()
		}
	case "api.analysis_request":
		m.apiRequests.WithLabelValues(tags["endpoint"], tags["status"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "analysis.duration":
		m.analysisDuration.Observe(float64(duration.Milliseconds()))
	case "api.analysis_latency":
		m.apiLatency.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "ingest.rows":
		if stage := tags["stage"]; stage != "" {
			m.rows.WithLabelValues(stage).Set(value)
		}
	case "analysis.findings":
		if kind := tags["kind"]; kind != "" {
			m.findings.WithLabelValues(kind).Set(value)
		}
	}
}
