package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	// DecisionsTotal counts quarantine decisions by action and origin
	// ("auto" or "manual").
	DecisionsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "ufobeep_quarantine_decisions_total",
			Help: "Total number of quarantine decisions applied",
		},
		[]string{"action", "origin"},
	)

	SyncAttemptsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "ufobeep_sync_attempts_total",
			Help: "Sync gateway delivery attempts by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	OutboxPending = promauto.With(registerer).NewGauge(
		prometheus.GaugeOpts{
			Name: "ufobeep_outbox_pending",
			Help: "Number of moderation commands awaiting delivery",
		},
	)
)

func init() {
	registerer.MustRegister(collectors.NewGoCollector())
	registerer.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
}

// Registry exposes the metrics registry for the HTTP handler.
func Registry() *prometheus.Registry {
	return registry
}
