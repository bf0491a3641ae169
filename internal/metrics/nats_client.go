package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	natsRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "nats_client",
		Name:      "requests_total",
		Help:      "Count of VeriBlock gateway requests.",
	}, []string{"operation", "status"})
	natsRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "nats_client",
		Name:      "request_duration_seconds",
		Help:      "Duration of VeriBlock gateway requests.",
		// Publications requests wait for the keystone to be published.
		Buckets: []float64{.01, .05, .1, .5, 1, 5, 10, 30, 60, 300, 900, 1800},
	}, []string{"operation", "status"})
)

// NATSClient tracks gateway request metrics.
type NATSClient struct{}

func NewNATSClient() *NATSClient {
	return &NATSClient{}
}

func (m NATSClient) Observe(operation string, err error, started time.Time) {
	s := status(err)
	natsRequestsTotal.WithLabelValues(operation, s).Inc()
	natsRequestDuration.WithLabelValues(operation, s).Observe(time.Since(started).Seconds())
}
