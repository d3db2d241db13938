package persist

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Writes        prometheus.Counter
	WriteFailures prometheus.Counter
}

func NewMetrics() *Metrics {
	return &Metrics{
		Writes: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vcc_persist_writes_total",
			Help: "Completed state blob writes.",
		}),
		WriteFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vcc_persist_write_failures_total",
			Help: "State blob writes that failed.",
		}),
	}
}
