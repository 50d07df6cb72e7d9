package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/lockdapp/lockdex-backend/internal/model"
)

var (
	indexerFetchHeightsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lockdex",
		Subsystem: "indexer",
		Name:      "fetch_heights_total",
		Help:      "Count of attempts to fetch new heights to index.",
	}, []string{"role", "network", "status"})
	indexerFetchHeightsDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lockdex",
		Subsystem: "indexer",
		Name:      "fetch_heights_duration_seconds",
		Help:      "Duration of fetching new heights to index.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"role", "network", "status"})
	indexerFetchBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lockdex",
		Subsystem: "indexer",
		Name:      "fetch_batch_size",
		Help:      "Number of heights fetched per batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"role", "network"})
	indexerProcessBlockTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lockdex",
		Subsystem: "indexer",
		Name:      "process_block_total",
		Help:      "Count of blocks processed.",
	}, []string{"role", "network", "status"})
	indexerProcessBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lockdex",
		Subsystem: "indexer",
		Name:      "process_block_duration_seconds",
		Help:      "Duration of processing one block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"role", "network", "status"})
	indexerBlockTransactions = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lockdex",
		Subsystem: "indexer",
		Name:      "block_transactions",
		Help:      "Number of data-carrying transactions per processed block.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14),
	}, []string{"role", "network"})
	indexerChainHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "lockdex",
		Subsystem: "indexer",
		Name:      "chain_height",
		Help:      "Best height reported by the node.",
	}, []string{"role", "network"})
	indexerIndexedHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "lockdex",
		Subsystem: "indexer",
		Name:      "indexed_height",
		Help:      "Highest height fully indexed.",
	}, []string{"role", "network"})
)

// Indexer tracks metrics for an indexing loop. Role distinguishes the
// tip follower from the history backfiller.
type Indexer struct {
	role    string
	network model.Network
}

// NewIndexer constructs an Indexer metrics collector.
func NewIndexer(role string, network model.Network) *Indexer {
	if role == "" {
		role = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &Indexer{role: role, network: network}
}

// ObserveFetchHeights records one attempt to discover new heights.
func (m Indexer) ObserveFetchHeights(err error, heights int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	indexerFetchHeightsTotal.WithLabelValues(m.role, string(m.network), status).Inc()
	indexerFetchHeightsDuration.WithLabelValues(m.role, string(m.network), status).
		Observe(time.Since(started).Seconds())
	if err == nil {
		indexerFetchBatchSize.WithLabelValues(m.role, string(m.network)).Observe(float64(heights))
	}
}

// ObserveProcessBlock records processing of one block.
func (m Indexer) ObserveProcessBlock(err error, txs int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	indexerProcessBlockTotal.WithLabelValues(m.role, string(m.network), status).Inc()
	indexerProcessBlockDuration.WithLabelValues(m.role, string(m.network), status).
		Observe(time.Since(started).Seconds())
	if err == nil {
		indexerBlockTransactions.WithLabelValues(m.role, string(m.network)).Observe(float64(txs))
	}
}

// SetChainHeight publishes the node's best height.
func (m Indexer) SetChainHeight(height uint64) {
	indexerChainHeight.WithLabelValues(m.role, string(m.network)).Set(float64(height))
}

// SetIndexedHeight publishes the highest fully indexed height.
func (m Indexer) SetIndexedHeight(height uint64) {
	indexerIndexedHeight.WithLabelValues(m.role, string(m.network)).Set(float64(height))
}
