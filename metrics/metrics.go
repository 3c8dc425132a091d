// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestsTotal counts handled requests.
	// Labels: route, method (GET, POST, OPTIONS, HEAD or other), status (numeric code)
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "survey",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total HTTP requests by route, method and status",
	}, []string{"route", "method", "status"})

	// RequestDuration measures handler latency.
	// Labels: route
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "survey",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds",
		Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"route"})

	// ResponsesSaved counts survey responses written successfully.
	ResponsesSaved = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "survey",
		Name:      "responses_saved_total",
		Help:      "Total survey responses persisted",
	})

	// StorageErrors counts failed storage operations.
	// Labels: operation (save, stats), kind (unavailable, rejected)
	StorageErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "survey",
		Subsystem: "storage",
		Name:      "errors_total",
		Help:      "Total storage failures by operation and kind",
	}, []string{"operation", "kind"})
)

// Handler serves the default Prometheus registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// statusRecorder remembers the status code written by the wrapped handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// methodLabel folds request methods into a fixed label set.
// Any other token is reported as "other".
func methodLabel(method string) string {
	switch method {
	case http.MethodGet, http.MethodPost, http.MethodOptions, http.MethodHead:
		return method
	}
	return "other"
}

// Instrument records request count and latency under the given route label.
func Instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next(rec, r)

		RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		RequestsTotal.WithLabelValues(route, methodLabel(r.Method), strconv.Itoa(rec.status)).Inc()
	}
}
