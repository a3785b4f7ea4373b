package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Запросы, прошедшие через прокси, по методу и статусу ответа
	ProxiedRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "devproxy_requests_total",
			Help: "Total number of requests forwarded to the backend.",
		},
		[]string{"method", "status"},
	)

	ProxiedRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "devproxy_request_duration_seconds",
			Help:    "Duration of proxied requests in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
		},
		[]string{"method"},
	)

	UpstreamErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "devproxy_upstream_errors_total",
			Help: "Requests that failed because the backend did not answer.",
		},
	)
)

// ObserveRequest записывает метрики одного проксированного запроса
func ObserveRequest(method string, status int, start time.Time) {
	ProxiedRequestsTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	ProxiedRequestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}
