package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	barsGenerated  *prometheus.CounterVec
	genDuration    prometheus.Histogram
	exportsTotal   *prometheus.CounterVec
	seriesRequests *prometheus.CounterVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		barsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "synthtick_bars_generated_total",
				Help: "Total number of price bars generated",
			},
			[]string{"ticker"},
		),
		genDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "synthtick_generation_duration_seconds",
				Help:    "Duration of table generation in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		exportsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "synthtick_exports_total",
				Help: "Total number of export attempts by format and outcome",
			},
			[]string{"format", "outcome"},
		),
		seriesRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "synthtick_series_requests_total",
				Help: "Total number of series lookups by ticker",
			},
			[]string{"ticker"},
		),
	}
}

// RecordBarsGenerated records bars produced for a ticker.
func (r *Recorder) RecordBarsGenerated(ticker string, n int) {
	r.barsGenerated.WithLabelValues(ticker).Add(float64(n))
}

// RecordGenerationDuration records one generation pass.
func (r *Recorder) RecordGenerationDuration(seconds float64) {
	r.genDuration.Observe(seconds)
}

// RecordExport records an export attempt and its outcome.
func (r *Recorder) RecordExport(format string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.exportsTotal.WithLabelValues(format, outcome).Inc()
}

// RecordSeriesRequest counts a series lookup for a ticker.
func (r *Recorder) RecordSeriesRequest(ticker string) {
	r.seriesRequests.WithLabelValues(ticker).Inc()
}
