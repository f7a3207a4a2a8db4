package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	receiptsParsed      *prometheus.CounterVec
	amountStrategies    *prometheus.CounterVec
	receiptDuration     prometheus.Histogram
	analysisDuration    prometheus.Histogram
	analysisHealthScore prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		receiptsParsed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "receipts_parsed_total",
				Help: "Total number of receipt texts parsed by outcome",
			},
			[]string{"outcome"},
		),
		amountStrategies: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "amount_extraction_strategies_total",
				Help: "Total number of amount extractions by winning strategy",
			},
			[]string{"strategy"},
		),
		receiptDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "receipt_parse_duration_milliseconds",
				Help:    "Receipt parsing duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		analysisDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "analysis_request_duration_milliseconds",
				Help:    "Financial analysis duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		analysisHealthScore: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "analysis_health_score",
				Help: "Health score of the most recent analysis (0-100)",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "receipt.parsed":
		if outcome := tags["outcome"]; outcome != "" {
			m.receiptsParsed.WithLabelValues(outcome).Inc()
		}
	case "amount.extraction":
		if strategy := tags["strategy"]; strategy != "" {
			m.amountStrategies.WithLabelValues(strategy).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "receipt.parse":
		m.receiptDuration.Observe(float64(duration.Milliseconds()))
	case "analysis.request":
		m.analysisDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	if name == "analysis.health_score" {
		m.analysisHealthScore.Set(value)
	}
}

// NoopMetricsRecorder discards all recordings. Used when metrics are
// disabled and in tests, where registering promauto collectors twice
// would panic.
type NoopMetricsRecorder struct{}

func NewNoopMetricsRecorder() MetricsRecorderInterface {
	return &NoopMetricsRecorder{}
}

func (m *NoopMetricsRecorder) IncrementCounter(name string, tags map[string]string)       {}
func (m *NoopMetricsRecorder) RecordProcessingTime(name string, duration time.Duration)   {}
func (m *NoopMetricsRecorder) RecordGauge(name string, value float64, tags map[string]string) {
}
