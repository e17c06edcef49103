package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for backlog scans.
type Metrics struct {
	// Completed scans by trigger
	Scans *prometheus.CounterVec

	// Groups whose pending requests could not be listed
	GroupFailures prometheus.Counter

	// Groups whose page came back full
	TruncatedPages prometheus.Counter

	ScanDuration prometheus.Histogram
}

// New registers the backlog metrics with reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)
	return &Metrics{
		Scans: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "warden_backlog_scans_total",
			Help: "Completed backlog scans by trigger",
		}, []string{"trigger"}), // trigger: "startup", "interval", "command", "http", "cli"

		GroupFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "warden_backlog_group_failures_total",
			Help: "Groups skipped because their pending requests could not be listed",
		}),

		TruncatedPages: factory.NewCounter(prometheus.CounterOpts{
			Name: "warden_backlog_truncated_pages_total",
			Help: "Groups whose pending request page was full",
		}),

		ScanDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "warden_backlog_scan_duration_seconds",
			Help:    "Duration of one backlog scan",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
		}),
	}
}

func (m *Metrics) IncrementScan(trigger string) {
	if m != nil {
		m.Scans.WithLabelValues(trigger).Inc()
	}
}

func (m *Metrics) IncrementGroupFailure() {
	if m != nil {
		m.GroupFailures.Inc()
	}
}

func (m *Metrics) IncrementTruncated() {
	if m != nil {
		m.TruncatedPages.Inc()
	}
}

func (m *Metrics) ObserveScanDuration(d time.Duration) {
	if m != nil {
		m.ScanDuration.Observe(d.Seconds())
	}
}
