package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/lockdapp/lockdex-backend/internal/model"
)

var (
	postgresRepositoryOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lockdex",
		Subsystem: "postgres_repository",
		Name:      "operations_total",
		Help:      "Count of content store operations.",
	}, []string{"operation", "network", "status"})
	postgresRepositoryOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lockdex",
		Subsystem: "postgres_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of content store operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"operation", "network", "status"})
)

// PostgresRepository tracks metrics for the content store.
type PostgresRepository struct {
	network model.Network
}

// NewPostgresRepository constructs a PostgresRepository metrics collector.
func NewPostgresRepository(network model.Network) *PostgresRepository {
	if network == "" {
		network = "unknown"
	}
	return &PostgresRepository{network: network}
}

// Observe records duration and status of a content store operation.
func (m PostgresRepository) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	postgresRepositoryOperationsTotal.WithLabelValues(operation, string(m.network), status).Inc()
	postgresRepositoryOperationDuration.WithLabelValues(operation, string(m.network), status).
		Observe(time.Since(started).Seconds())
}
