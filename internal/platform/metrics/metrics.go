package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// NewRegistry returns a registry carrying the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Metrics holds process-level metrics for the update loop.
type Metrics struct {
	LoopRestarts     *prometheus.CounterVec
	UpdatesProcessed *prometheus.CounterVec
}

// New registers the process metrics with reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		LoopRestarts: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "warden_loop_restarts_total",
			Help: "Supervised loop restarts by loop name and cause",
		}, []string{"loop", "cause"}), // cause: "error", "panic"

		UpdatesProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "warden_updates_processed_total",
			Help: "Platform updates handled by the dispatcher, by kind",
		}, []string{"kind"}),
	}
}

// IncrementRestart records a supervised loop restart.
func (m *Metrics) IncrementRestart(loop, cause string) {
	if m != nil {
		m.LoopRestarts.WithLabelValues(loop, cause).Inc()
	}
}

// IncrementUpdate records a dispatched update.
func (m *Metrics) IncrementUpdate(kind string) {
	if m != nil {
		m.UpdatesProcessed.WithLabelValues(kind).Inc()
	}
}
