package reconcile

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	state            *prometheus.GaugeVec
	FeedEvents       *prometheus.CounterVec
	Pushes           *prometheus.CounterVec
	PushFailures     *prometheus.CounterVec
	BulkLoadFailures *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		state: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "vcc_reconcile_state",
			Help: "Current reconciler state, one-hot by label.",
		}, []string{"state"}),
		FeedEvents: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vcc_reconcile_feed_events_total",
			Help: "Realtime feed events applied to the store.",
		}, []string{"table", "type"}),
		Pushes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vcc_reconcile_pushes_total",
			Help: "Outbound writes acknowledged by the remote store.",
		}, []string{"table"}),
		PushFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vcc_reconcile_push_failures_total",
			Help: "Outbound writes the remote store rejected or lost.",
		}, []string{"table"}),
		BulkLoadFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vcc_reconcile_bulk_load_failures_total",
			Help: "Bulk table fetches that failed and were skipped.",
		}, []string{"table"}),
	}
}

func (m *Metrics) SetState(s State) {
	for _, st := range []State{StateDisconnected, StateBulkLoading, StateSubscribed, StateReconnecting} {
		v := 0.0
		if st == s {
			v = 1
		}
		m.state.WithLabelValues(string(st)).Set(v)
	}
}
