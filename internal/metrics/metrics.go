// internal/metrics/metrics.go
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal counts served requests by method, route and status
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "designtokens_http_requests_total",
		Help: "Total HTTP requests by method, route and status",
	}, []string{"method", "route", "status"})

	// HTTPRequestDuration tracks request latency
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "designtokens_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// StoreOperationsTotal counts palette store operations by outcome
	StoreOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "designtokens_store_operations_total",
		Help: "Total store operations by operation and result",
	}, []string{"operation", "result"})

	// StoreOperationDuration tracks store latency
	StoreOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "designtokens_store_operation_duration_seconds",
		Help:    "Store operation duration in seconds",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	}, []string{"operation"})

	// ColorsImportedTotal counts entries created through bulk JSON import
	ColorsImportedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "designtokens_colors_imported_total",
		Help: "Total color entries created by bulk import",
	})

	// ColorsRejectedTotal counts rejected color input by reason
	ColorsRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "designtokens_colors_rejected_total",
		Help: "Total rejected color input by reason",
	}, []string{"reason"})
)

// ObserveStore records the outcome and latency of one store operation.
func ObserveStore(operation string, start time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	StoreOperationsTotal.WithLabelValues(operation, result).Inc()
	StoreOperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// Handler exposes the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
