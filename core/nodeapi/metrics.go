package nodeapi

import (
	"github.com/prometheus/client_golang/prometheus"
	m "github.com/redesblock/mopboard/core/metrics"
)

type clientMetrics struct {
	// all metrics fields must be exported
	// to be able to return them by Metrics()
	// using reflection
	RequestCount     prometheus.Counter
	ErrorCount       prometheus.Counter
	ResponseDuration prometheus.Histogram
}

func newClientMetrics() clientMetrics {
	subsystem := "nodeapi"

	return clientMetrics{
		RequestCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "request_count",
			Help:      "Number of requests made against the node debug API",
		}),
		ErrorCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "error_count",
			Help:      "Number of failed requests against the node debug API",
		}),
		ResponseDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: m.Namespace,
			Subsystem: subsystem,
			Name:      "response_duration_seconds",
			Help:      "Histogram of node debug API response durations",
		}),
	}
}

func (c *client) Metrics() []prometheus.Collector {
	return m.PrometheusCollectorsFromFields(c.metrics)
}
