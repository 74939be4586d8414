package middleware

import (
	"net/http"
	"strconv"
	"taskboard/pkg/metrics"
	"time"
)

type metricsMiddleware struct{}

func NewMetricsMiddleware() *metricsMiddleware {
	return &metricsMiddleware{}
}

// Measure records the duration of every request served by next under the given route label.
func (m *metricsMiddleware) Measure(route string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)

		next.ServeHTTP(rec, r)

		metrics.RecordHTTPRequestDuration(r.Method, route, strconv.Itoa(rec.status), time.Since(start))
	})
}
