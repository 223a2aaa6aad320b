package preview

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the Prometheus metrics for the preview server.
type metrics struct {
	rendersTotal   prometheus.Counter
	renderErrors   prometheus.Counter
	renderDuration prometheus.Histogram
	renderBytes    prometheus.Histogram
}

// newMetrics registers the preview metrics with the given registerer.
func newMetrics(reg prometheus.Registerer) *metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return &metrics{
		rendersTotal: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: "weft",
			Subsystem: "preview",
			Name:      "renders_total",
			Help:      "Number of documents rendered by the preview server.",
		}),
		renderErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Namespace: "weft",
			Subsystem: "preview",
			Name:      "render_errors_total",
			Help:      "Number of renders that panicked.",
		}),
		renderDuration: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Namespace: "weft",
			Subsystem: "preview",
			Name:      "render_duration_seconds",
			Help:      "Time spent running the source function.",
			Buckets:   prometheus.DefBuckets,
		}),
		renderBytes: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Namespace: "weft",
			Subsystem: "preview",
			Name:      "render_bytes",
			Help:      "Size of rendered documents in bytes.",
			Buckets:   prometheus.ExponentialBuckets(256, 4, 8),
		}),
	}
}
