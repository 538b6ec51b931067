// Package dashboard exposes the JSON API consumed by the operator
// dashboard front end: chequebook deposits and withdrawals, postage batch
// purchase with live quoting, and node status.
package dashboard

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redesblock/mopboard/core/logging"
	"github.com/redesblock/mopboard/core/metrics"
	"github.com/redesblock/mopboard/core/nodeapi"
)

type Service interface {
	http.Handler
	MustRegisterMetrics(cs ...prometheus.Collector)
}

type server struct {
	Client nodeapi.Service
	Logger logging.Logger

	metricsRegistry *prometheus.Registry
	Options
	http.Handler
}

type Options struct {
	CORSAllowedOrigins []string
}

// New creates the dashboard service around the given node client.
func New(client nodeapi.Service, logger logging.Logger, o Options) Service {
	s := &server{
		Client:          client,
		Logger:          logger,
		metricsRegistry: newMetricsRegistry(),
		Options:         o,
	}

	if c, ok := client.(metrics.Collector); ok {
		s.MustRegisterMetrics(c.Metrics()...)
	}

	s.setupRouting()

	return s
}
