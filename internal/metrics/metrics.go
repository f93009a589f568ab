package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the transfer client.
type Metrics struct {
	transfersTotal    *prometheus.CounterVec
	transferDuration  *prometheus.HistogramVec
	estimatedGas      prometheus.Histogram
	httpRequestsTotal *prometheus.CounterVec
	httpDuration      *prometheus.HistogramVec
}

// NewMetrics registers all collectors on registry.
// If registry is nil, prometheus.DefaultRegisterer is used.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(registry)

	return &Metrics{
		transfersTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transether_transfers_total",
				Help: "Total number of ether transfers by outcome",
			},
			[]string{"status"},
		),
		transferDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "transether_transfer_duration_seconds",
				Help:    "Duration of ether transfers from request to receipt in seconds",
				Buckets: []float64{0.05, 0.25, 1, 2.5, 5, 15, 30, 60, 120},
			},
			[]string{"status"},
		),
		estimatedGas: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "transether_estimated_gas",
				Help:    "Gas estimated for sendEther calls",
				Buckets: []float64{21000, 25000, 30000, 40000, 60000, 100000},
			},
		),
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"handler", "method", "status"},
		),
		httpDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 10, 60},
			},
			[]string{"handler", "method", "status"},
		),
	}
}

// RecordTransfer records the outcome and duration of one transfer attempt.
func (m *Metrics) RecordTransfer(status string, duration time.Duration) {
	m.transfersTotal.WithLabelValues(status).Inc()
	m.transferDuration.WithLabelValues(status).Observe(duration.Seconds())
}

func (m *Metrics) ObserveEstimatedGas(gas uint64) {
	m.estimatedGas.Observe(float64(gas))
}

func (m *Metrics) RecordHTTPRequest(handler, method string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	m.httpRequestsTotal.WithLabelValues(handler, method, status).Inc()
	m.httpDuration.WithLabelValues(handler, method, status).Observe(duration.Seconds())
}
