package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/repstack/coachcore/internal/telemetry/metrics"

	"github.com/prometheus/client_golang/prometheus"
)

func RequestMetrics(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(respWriter http.ResponseWriter, req *http.Request) {
			defer func(begin time.Time) {
				metricsManager.HistRequestDuration.Observe(time.Since(begin).Seconds())
			}(time.Now())

			metricsManager.GaugeRequests.Inc()
			defer metricsManager.GaugeRequests.Dec()

			resp := &responseWriter{respWriter, http.StatusOK}

			// handler call
			next.ServeHTTP(resp, req)

			metricsManager.CounterRequests.With(
				prometheus.Labels{
					"method": req.Method,
					"status": strconv.Itoa(resp.statusCode),
				},
			).Inc()
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (r *responseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.statusCode = statusCode
}
