package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/lockdapp/lockdex-backend/internal/model"
)

var (
	rpcRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lockdex",
		Subsystem: "rpc_client",
		Name:      "requests_total",
		Help:      "Count of node RPC requests.",
	}, []string{"method", "network", "status"})
	rpcRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lockdex",
		Subsystem: "rpc_client",
		Name:      "request_duration_seconds",
		Help:      "Duration of node RPC requests.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 20, 30},
	}, []string{"method", "network", "status"})
)

// RPCClient tracks metrics for node RPC calls.
type RPCClient struct {
	network model.Network
}

// NewRPCClient constructs an RPCClient metrics collector.
func NewRPCClient(network model.Network) *RPCClient {
	if network == "" {
		network = "unknown"
	}
	return &RPCClient{network: network}
}

// Observe records one RPC call outcome and duration.
func (m RPCClient) Observe(method string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	rpcRequestsTotal.WithLabelValues(method, string(m.network), status).Inc()
	rpcRequestDuration.WithLabelValues(method, string(m.network), status).
		Observe(time.Since(started).Seconds())
}
