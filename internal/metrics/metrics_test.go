package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/calculator"
)

// gather returns the metrics of one family keyed by the joined label values.
func gather(t *testing.T, reg *prometheus.Registry, name string) map[string]*dto.Metric {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)

	out := make(map[string]*dto.Metric)
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		for _, m := range f.GetMetric() {
			key := ""
			for _, l := range m.GetLabel() {
				key += l.GetValue() + "|"
			}
			out[key] = m
		}
	}
	return out
}

func TestObserveFaults(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	err := errors.Join(
		&calculator.ValidationFault{Code: calculator.CodeUnknownMember, ExpenseID: "e1", MemberID: "ghost"},
		&calculator.ValidationFault{Code: calculator.CodeUnknownMember, ExpenseID: "e2", MemberID: "ghost"},
		&calculator.ValidationFault{Code: calculator.CodeDegenerateSplit, ExpenseID: "e3"},
		errors.New("not a fault"),
	)
	m.ObserveFaults(err)

	got := gather(t, reg, "splitledger_validation_faults_total")
	require.Len(t, got, 2)
	assert.Equal(t, 2.0, got[calculator.CodeUnknownMember+"|"].GetCounter().GetValue())
	assert.Equal(t, 1.0, got[calculator.CodeDegenerateSplit+"|"].GetCounter().GetValue())
}

func TestObserveRPC(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	const procedure = "/splitledger.v1.GroupService/GetGroup"
	m.ObserveRPC(procedure, "ok", 0.01)
	m.ObserveRPC(procedure, "not_found", 0.02)
	m.ObserveRPC(procedure, "ok", 0.03)

	// Labels are sorted by name: code, procedure.
	requests := gather(t, reg, "splitledger_rpc_requests_total")
	assert.Equal(t, 2.0, requests["ok|"+procedure+"|"].GetCounter().GetValue())
	assert.Equal(t, 1.0, requests["not_found|"+procedure+"|"].GetCounter().GetValue())

	durations := gather(t, reg, "splitledger_rpc_duration_seconds")
	require.Len(t, durations, 1)
	assert.Equal(t, uint64(3), durations[procedure+"|"].GetHistogram().GetSampleCount())
}

func TestObservePlan(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.ObservePlan(2)
	m.ObservePlan(0)

	got := gather(t, reg, "splitledger_settlement_plan_transfers")
	require.Len(t, got, 1)
	h := got[""].GetHistogram()
	assert.Equal(t, uint64(2), h.GetSampleCount())
	assert.Equal(t, 2.0, h.GetSampleSum())
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRPC("p", "ok", 1)
		m.ObserveFaults(calculator.ErrUnknownMember)
		m.ObservePlan(3)
	})
}
