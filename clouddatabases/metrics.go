package clouddatabases

import (
	"net/http"

	"github.com/juju/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func newRequestMetrics() (*prometheus.CounterVec, *prometheus.HistogramVec) {
	requestCount := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "clouddatabases_client_requests_total",
			Help: "Total requests sent to the Cloud Databases API",
		},
		[]string{"code", "method"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "clouddatabases_client_request_duration_seconds",
			Help:    "Duration of requests sent to the Cloud Databases API",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"code", "method"},
	)
	return requestCount, requestDuration
}

// register registers c with reg, or returns the collector already registered
// under the same description so several clients can share one registry.
func register(reg prometheus.Registerer, c prometheus.Collector) (prometheus.Collector, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return are.ExistingCollector, nil
		}
		return nil, errors.Trace(err)
	}
	return c, nil
}

// instrumentTransport counts and times every request made through next.
func instrumentTransport(reg prometheus.Registerer, next http.RoundTripper) (http.RoundTripper, error) {
	count, duration := newRequestMetrics()

	c, err := register(reg, count)
	if err != nil {
		return nil, err
	}
	d, err := register(reg, duration)
	if err != nil {
		return nil, err
	}

	return promhttp.InstrumentRoundTripperCounter(c.(*prometheus.CounterVec),
		promhttp.InstrumentRoundTripperDuration(d.(*prometheus.HistogramVec), next),
	), nil
}
