package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lockdex",
		Subsystem: "api",
		Name:      "requests_total",
		Help:      "Count of handled API requests.",
	}, []string{"route", "method", "code"})
	apiRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lockdex",
		Subsystem: "api",
		Name:      "request_duration_seconds",
		Help:      "Duration of handling one API request.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method", "code"})
)

// API tracks metrics for the HTTP read surface.
type API struct{}

// NewAPI constructs an API metrics collector.
func NewAPI() *API {
	return &API{}
}

// ObserveRequest records one handled request.
func (m API) ObserveRequest(route, method string, code int, started time.Time) {
	c := strconv.Itoa(code)
	apiRequestsTotal.WithLabelValues(route, method, c).Inc()
	apiRequestDuration.WithLabelValues(route, method, c).Observe(time.Since(started).Seconds())
}
