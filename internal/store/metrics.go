package store

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for the command path.
type Metrics struct {
	CommandsApplied *prometheus.CounterVec
}

// NewMetrics registers and returns store metrics collectors.
func NewMetrics() *Metrics {
	return &Metrics{
		CommandsApplied: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "vcc_commands_applied_total",
			Help: "Total number of mutation commands applied, by collection, kind, and origin",
		}, []string{"collection", "kind", "origin"}),
	}
}
