// Package metrics exposes Prometheus collectors for the ledger server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/mmynk/splitledger/internal/calculator"
)

const namespace = "splitledger"

// Metrics holds the server's collectors. A nil *Metrics is valid and
// records nothing, so services can run without a registry in tests.
type Metrics struct {
	rpcRequests      *prometheus.CounterVec
	rpcDuration      *prometheus.HistogramVec
	validationFaults *prometheus.CounterVec
	planTransfers    prometheus.Histogram
}

// New registers the collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		rpcRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "RPC calls by procedure and result code.",
		}, []string{"procedure", "code"}),
		rpcDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		validationFaults: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_faults_total",
			Help:      "Expense and member-list faults by code.",
		}, []string{"code"}),
		planTransfers: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "settlement_plan_transfers",
			Help:      "Number of transfers in each computed settlement plan.",
			Buckets:   []float64{0, 1, 2, 3, 5, 8, 13, 21},
		}),
	}
}

// ObserveRPC records one finished call.
func (m *Metrics) ObserveRPC(procedure, code string, seconds float64) {
	if m == nil {
		return
	}
	m.rpcRequests.WithLabelValues(procedure, code).Inc()
	m.rpcDuration.WithLabelValues(procedure).Observe(seconds)
}

// ObserveFaults counts every ValidationFault carried by err.
func (m *Metrics) ObserveFaults(err error) {
	if m == nil {
		return
	}
	for _, f := range calculator.Faults(err) {
		m.validationFaults.WithLabelValues(f.Code).Inc()
	}
}

// ObservePlan records the size of a settlement plan.
func (m *Metrics) ObservePlan(transfers int) {
	if m == nil {
		return
	}
	m.planTransfers.Observe(float64(transfers))
}
