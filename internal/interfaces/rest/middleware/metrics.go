package middleware

import (
	"net/http"
	"time"

	"github.com/edumarket/checkout-gateway/internal/observability"
)

// Metrics records a counter and latency sample per request. Paths here are
// low-cardinality: only the two checkout routes are registered.
func Metrics(m *observability.HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &responseRecorder{ResponseWriter: w}

			next.ServeHTTP(rec, r)

			status := rec.status
			if status == 0 {
				status = http.StatusOK
			}
			m.Record(r.URL.Path, r.Method, status, time.Since(start))
		})
	}
}
