// internal/monitoring/metrics.go
package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	queueLength = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "zoo_queue_length",
			Help: "Current queue length per attraction",
		},
		[]string{"attraction"},
	)

	queueOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zoo_queue_operations_total",
			Help: "Total queue state transitions",
		},
		[]string{"operation", "status"},
	)

	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zoo_http_requests_total",
			Help: "Total HTTP requests by method and path pattern",
		},
		[]string{"method", "path"},
	)
)

// SetQueueLength records the current queue length for an attraction.
func SetQueueLength(attraction string, length int) {
	queueLength.WithLabelValues(attraction).Set(float64(length))
}

// CountQueueOperation tallies a queue transition and its outcome.
func CountQueueOperation(operation string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	queueOperations.WithLabelValues(operation, status).Inc()
}

// CountRequests is router middleware tallying requests per route pattern.
func CountRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpRequests.WithLabelValues(r.Method, r.URL.Path).Inc()
		next.ServeHTTP(w, r)
	})
}

// Handler exposes the prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
