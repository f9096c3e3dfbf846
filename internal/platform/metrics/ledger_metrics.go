package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Record outcomes.
const (
	RecordStatusCreated  = "created"
	RecordStatusUpdated  = "updated"
	RecordStatusRejected = "rejected"
	RecordStatusError    = "error"
)

// Summary outcomes.
const (
	SummaryResultOK       = "ok"
	SummaryResultRejected = "rejected"
	SummaryResultError    = "error"
)

// Operation labels for the duration histogram.
const (
	OperationRecord    = "record"
	OperationSummarize = "summarize"
)

// LedgerMetrics captures payments ledger health signals.
type LedgerMetrics struct {
	registry          *prometheus.Registry
	recordTotal       *prometheus.CounterVec
	summaryTotal      *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
}

// NewLedgerMetrics registers the ledger collectors plus the Go and process collectors on a fresh registry.
func NewLedgerMetrics() *LedgerMetrics {
	registry := prometheus.NewRegistry()

	recordTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_record_total",
		Help: "Ledger record calls by outcome.",
	}, []string{"status"})
	summaryTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_summary_total",
		Help: "Ledger summary calls by outcome.",
	}, []string{"result"})
	operationDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ledger_operation_duration_seconds",
		Help:    "Ledger operation latency including store round trips.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"operation"})

	registry.MustRegister(
		recordTotal,
		summaryTotal,
		operationDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &LedgerMetrics{
		registry:          registry,
		recordTotal:       recordTotal,
		summaryTotal:      summaryTotal,
		operationDuration: operationDuration,
	}
}

// ObserveRecord counts a record call. Safe on a nil receiver.
func (m *LedgerMetrics) ObserveRecord(status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.recordTotal.WithLabelValues(status).Inc()
	m.operationDuration.WithLabelValues(OperationRecord).Observe(elapsed.Seconds())
}

// ObserveSummary counts a summary call. Safe on a nil receiver.
func (m *LedgerMetrics) ObserveSummary(result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.summaryTotal.WithLabelValues(result).Inc()
	m.operationDuration.WithLabelValues(OperationSummarize).Observe(elapsed.Seconds())
}

// Registry exposes the underlying registry.
func (m *LedgerMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *LedgerMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
