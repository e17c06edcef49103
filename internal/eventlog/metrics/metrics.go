package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks the member event stream.
type Metrics struct {
	Published       prometheus.Counter
	Dropped         prometheus.Counter
	PublishFailures prometheus.Counter
}

// New registers the stream metrics with reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		Published: factory.NewCounter(prometheus.CounterOpts{
			Name: "warden_member_events_published_total",
			Help: "Member events delivered to the stream",
		}),
		Dropped: factory.NewCounter(prometheus.CounterOpts{
			Name: "warden_member_events_dropped_total",
			Help: "Member events dropped because the stream buffer was full",
		}),
		PublishFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "warden_member_events_publish_failures_total",
			Help: "Member events the broker rejected",
		}),
	}
}

func (m *Metrics) IncPublished() {
	if m != nil {
		m.Published.Inc()
	}
}

func (m *Metrics) IncDropped() {
	if m != nil {
		m.Dropped.Inc()
	}
}

func (m *Metrics) IncPublishFailures() {
	if m != nil {
		m.PublishFailures.Inc()
	}
}
