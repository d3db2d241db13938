package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"vcc/internal/store"
)

// Metrics holds the application level Prometheus metrics. Package level
// concerns (store, persist, reconcile) register their own.
type Metrics struct {
	EndpointLatency   *prometheus.HistogramVec
	CollectionRecords *prometheus.GaugeVec
	AlertsEvaluated   prometheus.Counter
}

// New creates and registers all application metrics.
func New() *Metrics {
	return &Metrics{
		EndpointLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vcc_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		CollectionRecords: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "vcc_collection_records",
			Help: "Current record count per collection",
		}, []string{"collection"}),
		AlertsEvaluated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vcc_alert_evaluations_total",
			Help: "Total alert rule evaluation passes",
		}),
	}
}

// ObserveEndpointLatency records the latency for a given endpoint.
func (m *Metrics) ObserveEndpointLatency(endpoint string, durationSeconds float64) {
	m.EndpointLatency.WithLabelValues(endpoint).Observe(durationSeconds)
}

// ObserveSnapshot records the per-collection record counts. Called from
// a store subscriber after every accepted command.
func (m *Metrics) ObserveSnapshot(snap store.Snapshot) {
	set := func(collection string, n int) {
		m.CollectionRecords.WithLabelValues(collection).Set(float64(n))
	}
	set("ventures", len(snap.Ventures))
	set("tasks", len(snap.Tasks))
	set("milestones", len(snap.Milestones))
	set("team_roles", len(snap.TeamRoles))
	set("registrations", len(snap.Registrations))
	set("insights", len(snap.Insights))
	set("health_snapshots", len(snap.HealthSnapshots))
	set("recurring_tasks", len(snap.RecurringTasks))
	set("financials", len(snap.Financials))
	set("documents", len(snap.Documents))
	set("risks", len(snap.Risks))
	set("resource_shares", len(snap.ResourceShares))
}
