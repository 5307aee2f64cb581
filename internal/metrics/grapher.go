package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "bentographer"

// Run Prometheus metrics.
var (
	QueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Data file queries by query name and status",
		},
		[]string{"query", "status"},
	)

	QueryDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Data file query duration in seconds",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"query"},
	)

	PromptsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prompts_total",
			Help:      "Selection prompts by prompt title and outcome",
		},
		[]string{"prompt", "outcome"}, // "chosen" / "cancelled" / "empty" / "error"
	)

	SamplesPlotted = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "samples_plotted",
			Help:      "Distinct X values in the last rendered chart",
		},
	)

	RendersTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chart_renders_total",
			Help:      "Chart renders by status",
		},
		[]string{"status"},
	)
)

var runMetricsRegistered bool

// RegisterRunMetrics registers the run collectors. Must be called once from main.
func RegisterRunMetrics() {
	if runMetricsRegistered {
		return
	}
	prometheus.MustRegister(QueriesTotal)
	prometheus.MustRegister(QueryDuration)
	prometheus.MustRegister(PromptsTotal)
	prometheus.MustRegister(SamplesPlotted)
	prometheus.MustRegister(RendersTotal)
	runMetricsRegistered = true
}

// Status maps an error to a status label.
func Status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// ObserveQuery records one query outcome started at start.
func ObserveQuery(query string, start time.Time, err error) {
	QueryDuration.WithLabelValues(query).Observe(time.Since(start).Seconds())
	QueriesTotal.WithLabelValues(query, Status(err)).Inc()
}

// WriteTextfile dumps the default registry in the node_exporter textfile format.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
