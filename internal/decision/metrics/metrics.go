package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for join request adjudication.
type Metrics struct {
	// Adjudication outcomes by outcome, reason and delivery
	Outcomes *prometheus.CounterVec

	// Failed admission writes after a successful approve
	PersistFailures prometheus.Counter

	// Overall adjudication latency including remote calls
	AdjudicateLatency prometheus.Histogram
}

// New registers the decision metrics with reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		Outcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "warden_join_requests_total",
			Help: "Adjudicated join requests by outcome, reason and whether the verdict reached the platform",
		}, []string{"outcome", "reason", "delivered"}),

		PersistFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "warden_admission_persist_failures_total",
			Help: "Approved join requests whose admission record could not be written",
		}),

		AdjudicateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "warden_adjudicate_duration_seconds",
			Help:    "Duration of one join request adjudication",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
	}
}

func (m *Metrics) IncrementOutcome(outcome, reason string, delivered bool) {
	if m != nil {
		m.Outcomes.WithLabelValues(outcome, reason, strconv.FormatBool(delivered)).Inc()
	}
}

func (m *Metrics) IncrementPersistFailure() {
	if m != nil {
		m.PersistFailures.Inc()
	}
}

// ObserveAdjudicateLatency records the duration of one adjudication.
func (m *Metrics) ObserveAdjudicateLatency(d time.Duration) {
	if m != nil {
		m.AdjudicateLatency.Observe(d.Seconds())
	}
}
