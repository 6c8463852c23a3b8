package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	backendErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "travelkit_backend_errors_total",
			Help: "Total number of backend API failures by resource",
		},
		[]string{"resource"},
	)

	funnelRefreshes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "funnel_refreshes_total",
			Help: "Total number of funnel auto-refresh passes",
		},
		[]string{"outcome"},
	)

	liveClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "funnel_live_clients",
			Help: "Number of connected funnel live clients",
		},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordBackendError(resource string) {
	backendErrors.WithLabelValues(resource).Inc()
}

func RecordFunnelRefresh(outcome string) {
	funnelRefreshes.WithLabelValues(outcome).Inc()
}

func SetLiveClients(n int) {
	liveClients.Set(float64(n))
}
