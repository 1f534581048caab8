package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Metrics holds all Prometheus metrics for the API
type Metrics struct {
	// HTTP request metrics
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Codec operation metrics
	codecOperationsTotal *prometheus.CounterVec
	codecBytesTotal      *prometheus.CounterVec
	decodeFailuresTotal  *prometheus.CounterVec

	// API key authentication metrics
	authRequestsTotal *prometheus.CounterVec
}

// NewMetrics creates all Prometheus metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricklybird_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),

		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pricklybird_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),

		codecOperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricklybird_codec_operations_total",
				Help: "Total number of encode/decode operations",
			},
			[]string{"operation", "status"},
		),

		codecBytesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricklybird_codec_bytes_total",
				Help: "Total payload bytes processed by encode/decode",
			},
			[]string{"operation"},
		),

		decodeFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricklybird_decode_failures_total",
				Help: "Decode failures by error kind",
			},
			[]string{"kind"},
		),

		authRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pricklybird_auth_requests_total",
				Help: "API key authentication attempts",
			},
			[]string{"status"},
		),
	}
}

// RecordCodecOperation records an encode or decode outcome.
func (m *Metrics) RecordCodecOperation(operation string, success bool, payloadBytes int) {
	if m == nil {
		return
	}
	status := statusSuccess
	if !success {
		status = statusError
	}
	m.codecOperationsTotal.WithLabelValues(operation, status).Inc()
	if success {
		m.codecBytesTotal.WithLabelValues(operation).Add(float64(payloadBytes))
	}
}

// RecordDecodeFailure records a decode failure by error kind.
func (m *Metrics) RecordDecodeFailure(kind string) {
	if m == nil {
		return
	}
	m.decodeFailuresTotal.WithLabelValues(kind).Inc()
}

// RecordAuthAttempt records an API key authentication attempt.
func (m *Metrics) RecordAuthAttempt(success bool) {
	if m == nil {
		return
	}
	status := statusSuccess
	if !success {
		status = statusError
	}
	m.authRequestsTotal.WithLabelValues(status).Inc()
}

// InstrumentHandler wraps an HTTP handler with request metrics
func (m *Metrics) InstrumentHandler(method, endpoint string, handler http.HandlerFunc) http.HandlerFunc {
	if m == nil {
		return handler
	}
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		handler(recorder, r)

		m.httpRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(recorder.status)).Inc()
		m.httpRequestDuration.WithLabelValues(method, endpoint).Observe(time.Since(start).Seconds())
	}
}

// InstrumentAuthMiddleware wraps the auth middleware to count outcomes
func (m *Metrics) InstrumentAuthMiddleware(authMiddleware func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	if m == nil {
		return authMiddleware
	}
	return func(next http.Handler) http.Handler {
		counted := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m.RecordAuthAttempt(true)
			next.ServeHTTP(w, r)
		})
		rejected := authMiddleware(counted)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			rejected.ServeHTTP(recorder, r)
			if recorder.status == http.StatusUnauthorized {
				m.RecordAuthAttempt(false)
			}
		})
	}
}

// statusRecorder captures the response status code
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
