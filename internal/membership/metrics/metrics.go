package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for membership lookups.
type Metrics struct {
	// Remote standing lookups by result
	Lookups *prometheus.CounterVec

	// Standing cache requests by result
	CacheRequests *prometheus.CounterVec

	// Groups probed per network search
	SearchProbes prometheus.Histogram
}

// New registers the membership metrics with reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		Lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "warden_membership_lookups_total",
			Help: "Remote membership lookups by result",
		}, []string{"result"}), // result: "member", "non_member", or an error category

		CacheRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "warden_membership_cache_requests_total",
			Help: "Membership standing cache requests by result",
		}, []string{"result"}), // result: "hit", "miss", "error"

		SearchProbes: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "warden_membership_search_probes",
			Help:    "Number of groups probed by one network membership search",
			Buckets: []float64{1, 2, 4, 8, 16, 32, 64},
		}),
	}
}

// IncrementLookup records a remote lookup result.
func (m *Metrics) IncrementLookup(result string) {
	if m != nil {
		m.Lookups.WithLabelValues(result).Inc()
	}
}

// IncrementCache records a cache hit, miss or error.
func (m *Metrics) IncrementCache(result string) {
	if m != nil {
		m.CacheRequests.WithLabelValues(result).Inc()
	}
}

// ObserveProbes records how many groups one search probed.
func (m *Metrics) ObserveProbes(n int) {
	if m != nil {
		m.SearchProbes.Observe(float64(n))
	}
}
