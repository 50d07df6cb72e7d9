package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/lockdapp/lockdex-backend/internal/model"
)

var (
	clickhouseRepositoryOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lockdex",
		Subsystem: "clickhouse_repository",
		Name:      "operations_total",
		Help:      "Count of analytics store operations.",
	}, []string{"operation", "network", "status"})
	clickhouseRepositoryOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lockdex",
		Subsystem: "clickhouse_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of analytics store operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"operation", "network", "status"})
)

// ClickhouseRepository tracks metrics for the decode-event analytics store.
type ClickhouseRepository struct {
	network model.Network
}

// NewClickhouseRepository constructs a ClickhouseRepository metrics collector.
func NewClickhouseRepository(network model.Network) *ClickhouseRepository {
	if network == "" {
		network = "unknown"
	}
	return &ClickhouseRepository{network: network}
}

// Observe records duration and status of an analytics store operation.
func (m ClickhouseRepository) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	clickhouseRepositoryOperationsTotal.WithLabelValues(operation, string(m.network), status).Inc()
	clickhouseRepositoryOperationDuration.WithLabelValues(operation, string(m.network), status).
		Observe(time.Since(started).Seconds())
}
