package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// globe service.
type Metrics struct {
	FeedFetches    *prometheus.CounterVec   // labels: feed={quakes,borders}, outcome={success,error}
	FetchDuration  *prometheus.HistogramVec // labels: feed={quakes,borders}
	SnapshotEvents prometheus.Gauge
	BorderRings    prometheus.Gauge

	FigureRenders  prometheus.Counter
	RenderDuration prometheus.Histogram

	EventsPublished prometheus.Counter
	SinkEnabled     prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.FeedFetches,
		m.FetchDuration,
		m.SnapshotEvents,
		m.BorderRings,
		m.FigureRenders,
		m.RenderDuration,
		m.EventsPublished,
		m.SinkEnabled,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		FeedFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quake_globe",
			Name:      "feed_fetches_total",
			Help:      "Feed fetch attempts by feed and outcome.",
		}, []string{"feed", "outcome"}),
		FetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "quake_globe",
			Name:      "feed_fetch_duration_seconds",
			Help:      "Duration of feed fetch and parse by feed.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"feed"}),
		SnapshotEvents: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "quake_globe",
			Name:      "snapshot_events",
			Help:      "Number of events in the current snapshot.",
		}),
		BorderRings: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "quake_globe",
			Name:      "border_rings",
			Help:      "Number of country border rings loaded.",
		}),
		FigureRenders: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quake_globe",
			Name:      "figure_renders_total",
			Help:      "Total figures composed for API requests.",
		}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "quake_globe",
			Name:      "figure_render_duration_seconds",
			Help:      "Duration of figure composition and encoding.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		EventsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "quake_globe",
			Name:      "events_published_total",
			Help:      "Total events published to the Kafka sink topic.",
		}),
		SinkEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "quake_globe",
			Name:      "sink_enabled",
			Help:      "1 when the Kafka sink is enabled, 0 otherwise.",
		}),
	}
}
