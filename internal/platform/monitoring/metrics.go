package monitoring

import (
	"net/http"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, path and status",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	bookingOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_operations_total",
			Help: "Booking allocations by operation and outcome",
		},
		[]string{"operation", "status"},
	)

	goroutineCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_goroutines_total",
			Help: "Current number of active goroutines",
		},
	)
)

func BookingCreated() {
	bookingOperations.WithLabelValues("create", "success").Inc()
}

func BookingReassigned() {
	bookingOperations.WithLabelValues("update", "success").Inc()
}

func BookingRejected(operation string) {
	bookingOperations.WithLabelValues(operation, "rejected").Inc()
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// HTTPMetrics records a counter and latency histogram for every
// request. The first path segment is the label, so /booking/42 and
// /booking/43 share a series.
func HTTPMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(sw, r)

		path := "/"
		if segments := strings.SplitN(r.URL.Path, "/", 3); len(segments) > 1 && segments[1] != "" {
			path = "/" + segments[1]
		}

		httpRequests.WithLabelValues(r.Method, path, strconv.Itoa(sw.status)).Inc()
		httpDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}

// Monitor periodically samples runtime metrics.
type Monitor struct {
	interval time.Duration
}

func NewMonitor(interval time.Duration) *Monitor {
	return &Monitor{interval: interval}
}

// Run samples on every tick until the stop channel closes. Meant to be
// started in its own goroutine.
func (m *Monitor) Run(stop <-chan struct{}) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			goroutineCount.Set(float64(runtime.NumGoroutine()))
		}
	}
}
