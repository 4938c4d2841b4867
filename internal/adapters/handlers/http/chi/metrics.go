package chi

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "filesvc_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "filesvc_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

// MetricsMiddleware returns an HTTP middleware recording request counts and
// durations. uid path segments are collapsed to keep label cardinality flat.
func MetricsMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			path := normalizePath(r.URL.Path)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			duration := time.Since(start).Seconds()
			status := strconv.Itoa(ww.Status())

			httpRequestsTotal.WithLabelValues(r.Method, path, status).Inc()
			httpRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
		})
	}
}

// normalizePath replaces uid path segments with {uid}:
// /files/a1b2... -> /files/{uid}, /files/a1b2.../download -> /files/{uid}/download
func normalizePath(path string) string {
	switch path {
	case "/health", "/metrics", "/files", "/files/",
		"/files/upload", "/files/stream_upload":
		return path
	}

	const filesPrefix = "/files/"
	if strings.HasPrefix(path, filesPrefix) {
		if strings.HasSuffix(path, "/download") {
			return "/files/{uid}/download"
		}
		return "/files/{uid}"
	}

	return path
}
