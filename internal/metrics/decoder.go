// Package metrics exposes Prometheus collectors for the indexer
// pipeline: decoding, chain RPC, repositories and the indexer loops.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/lockdapp/lockdex-backend/internal/model"
)

var (
	decoderDecodesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lockdex",
		Subsystem: "decoder",
		Name:      "decodes_total",
		Help:      "Count of decode attempts by outcome.",
	}, []string{"network", "type", "status"})
	decoderDecodeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lockdex",
		Subsystem: "decoder",
		Name:      "decode_duration_seconds",
		Help:      "Duration of one transaction decode.",
		Buckets:   []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
	}, []string{"network", "type", "status"})
	decoderImagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lockdex",
		Subsystem: "decoder",
		Name:      "images_total",
		Help:      "Count of embedded images recovered by format.",
	}, []string{"network", "format"})
	decoderImageSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lockdex",
		Subsystem: "decoder",
		Name:      "image_size_bytes",
		Help:      "Size of recovered image payloads.",
		Buckets:   prometheus.ExponentialBuckets(64, 4, 10),
	}, []string{"network", "format"})
	decoderCacheSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "lockdex",
		Subsystem: "decoder",
		Name:      "dedup_cache_size",
		Help:      "Current population of the dedup cache.",
	}, []string{"network"})
)

// Decoder tracks metrics for the transaction content decoder.
type Decoder struct {
	network model.Network
}

// NewDecoder constructs a Decoder metrics collector.
func NewDecoder(network model.Network) *Decoder {
	if network == "" {
		network = "unknown"
	}
	return &Decoder{network: network}
}

// ObserveDecode records the outcome and duration of one decode attempt.
func (m Decoder) ObserveDecode(txType model.TxType, status model.DecodeStatus, started time.Time) {
	if txType == "" {
		txType = "none"
	}
	decoderDecodesTotal.WithLabelValues(string(m.network), string(txType), string(status)).Inc()
	decoderDecodeDuration.WithLabelValues(string(m.network), string(txType), string(status)).
		Observe(time.Since(started).Seconds())
}

// ObserveImage records a recovered image payload.
func (m Decoder) ObserveImage(format model.ImageFormat, sizeBytes int) {
	decoderImagesTotal.WithLabelValues(string(m.network), string(format)).Inc()
	decoderImageSize.WithLabelValues(string(m.network), string(format)).Observe(float64(sizeBytes))
}

// SetCacheSize publishes the dedup cache population.
func (m Decoder) SetCacheSize(size int) {
	decoderCacheSize.WithLabelValues(string(m.network)).Set(float64(size))
}
