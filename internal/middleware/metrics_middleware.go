package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"checkin-backend/internal/metrics"
)

// MetricsMiddleware records request count and latency per route. The
// one parameterized route is collapsed to its template so record ids
// never explode the path label cardinality.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &statusRecorder{ResponseWriter: w, statusCode: 200}
		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()
		path := metricsPath(r.URL.Path)

		metrics.HTTPRequestsTotal.WithLabelValues(
			r.Method,
			path,
			strconv.Itoa(wrapped.statusCode),
		).Inc()

		metrics.HTTPRequestDuration.WithLabelValues(
			r.Method,
			path,
		).Observe(duration)
	})
}

func metricsPath(p string) string {
	if strings.HasPrefix(p, "/api/checkin/") {
		return "/api/checkin/{id}"
	}
	return p
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}
