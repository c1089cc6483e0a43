package prometheusmetrics

import (
	"time"

	"github.com/prebid/adstxt/config"
	"github.com/prebid/adstxt/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics defines the Prometheus metrics backing the MetricsEngine implementation.
type Metrics struct {
	Registry *prometheus.Registry

	operations    *prometheus.CounterVec
	operationTime *prometheus.HistogramVec
	lines         *prometheus.CounterVec
	entries       *prometheus.CounterVec
	variables     prometheus.Counter
}

const (
	accountTypeLabel = "account_type"
	lineTypeLabel    = "line_type"
	operationLabel   = "operation"
	statusLabel      = "status"
)

// NewMetrics initializes a new Prometheus metrics instance with preloaded label values.
func NewMetrics(cfg config.Metrics) *Metrics {
	operationTimeBuckets := []float64{0.001, 0.002, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1}

	metrics := Metrics{}
	metrics.Registry = prometheus.NewRegistry()

	metrics.operations = newCounter(cfg, metrics.Registry,
		"operations",
		"Count of ads.txt operations labeled by operation and status.",
		[]string{operationLabel, statusLabel})

	metrics.operationTime = newHistogramVec(cfg, metrics.Registry,
		"operation_time_seconds",
		"Seconds to complete an ads.txt operation labeled by operation.",
		[]string{operationLabel},
		operationTimeBuckets)

	metrics.lines = newCounter(cfg, metrics.Registry,
		"lines",
		"Count of ads.txt lines read labeled by line type.",
		[]string{lineTypeLabel})

	metrics.entries = newCounter(cfg, metrics.Registry,
		"entries",
		"Count of seller entries labeled by account type.",
		[]string{accountTypeLabel})

	metrics.variables = newCounterWithoutLabels(cfg, metrics.Registry,
		"variables",
		"Count of distinct variable names.")

	preloadLabelValues(&metrics)

	return &metrics
}

func newCounter(cfg config.Metrics, registry *prometheus.Registry, name, help string, labels []string) *prometheus.CounterVec {
	opts := prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Subsystem: cfg.Subsystem,
		Name:      name,
		Help:      help,
	}
	counter := prometheus.NewCounterVec(opts, labels)
	registry.MustRegister(counter)
	return counter
}

func newCounterWithoutLabels(cfg config.Metrics, registry *prometheus.Registry, name, help string) prometheus.Counter {
	opts := prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Subsystem: cfg.Subsystem,
		Name:      name,
		Help:      help,
	}
	counter := prometheus.NewCounter(opts)
	registry.MustRegister(counter)
	return counter
}

func newHistogramVec(cfg config.Metrics, registry *prometheus.Registry, name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	opts := prometheus.HistogramOpts{
		Namespace: cfg.Namespace,
		Subsystem: cfg.Subsystem,
		Name:      name,
		Help:      help,
		Buckets:   buckets,
	}
	histogram := prometheus.NewHistogramVec(opts, labels)
	registry.MustRegister(histogram)
	return histogram
}

func preloadLabelValues(m *Metrics) {
	for _, operation := range metrics.OperationTypes() {
		for _, status := range metrics.OperationStatuses() {
			m.operations.WithLabelValues(string(operation), string(status))
		}
		m.operationTime.WithLabelValues(string(operation))
	}
	for _, lineType := range metrics.LineTypes() {
		m.lines.WithLabelValues(string(lineType))
	}
	for _, accountType := range metrics.AccountTypes() {
		m.entries.WithLabelValues(string(accountType))
	}
}

func (m *Metrics) RecordOperation(labels metrics.OperationLabels) {
	m.operations.With(prometheus.Labels{
		operationLabel: string(labels.Operation),
		statusLabel:    string(labels.Status),
	}).Inc()
}

func (m *Metrics) RecordOperationTime(labels metrics.OperationLabels, length time.Duration) {
	m.operationTime.With(prometheus.Labels{
		operationLabel: string(labels.Operation),
	}).Observe(length.Seconds())
}

func (m *Metrics) RecordLines(lineType metrics.LineType, count int) {
	m.lines.With(prometheus.Labels{
		lineTypeLabel: string(lineType),
	}).Add(float64(count))
}

func (m *Metrics) RecordEntries(accountType metrics.AccountType, count int) {
	m.entries.With(prometheus.Labels{
		accountTypeLabel: string(accountType),
	}).Add(float64(count))
}

func (m *Metrics) RecordVariables(count int) {
	m.variables.Add(float64(count))
}

// WriteTextfile writes the registry in the Prometheus text format to path, for pickup by the
// node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
