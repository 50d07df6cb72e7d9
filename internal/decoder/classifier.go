package decoder

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/lockdapp/lockdex-backend/internal/model"
)

// ErrMissingTxID reports a decode call without a transaction id. It is
// the only hard failure: every other malformed input degrades to a
// partial record.
var ErrMissingTxID = errors.New("decoder: missing transaction id")

// Metrics observes decode outcomes. A nil Metrics disables observation.
type Metrics interface {
	ObserveDecode(txType model.TxType, status model.DecodeStatus, started time.Time)
	ObserveImage(format model.ImageFormat, sizeBytes int)
	SetCacheSize(size int)
}

// Classifier is the top-level decode orchestrator: one call turns a
// raw transaction into a DecodedTransaction and deduplicates repeated
// processing attempts by transaction id.
type Classifier struct {
	cache   *DedupCache
	metrics Metrics
	logger  *zap.Logger
}

// NewClassifier wires the orchestrator. A nil cache gets the default
// ceiling, metrics may be nil.
func NewClassifier(cache *DedupCache, metrics Metrics, logger *zap.Logger) *Classifier {
	if cache == nil {
		cache = NewDedupCache(0)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{
		cache:   cache,
		metrics: metrics,
		logger:  logger.Named("decoder"),
	}
}

// Decode runs the full pipeline for one transaction: token extraction,
// field decoding, media extraction, conditional vote aggregation and
// classification. The boolean is false when the id was already
// processed and the pipeline was skipped. The only hard error is a
// missing id; an internal failure degrades to a minimal post record so
// a result is never lost when an id is present.
func (c *Classifier) Decode(tx model.RawTransaction) (*model.DecodedTransaction, bool, error) {
	if tx.TxID == "" {
		return nil, false, ErrMissingTxID
	}
	started := time.Now()
	if c.cache.Seen(tx.TxID) {
		if c.metrics != nil {
			c.metrics.ObserveDecode("", model.StatusSkipped, started)
		}
		return nil, false, nil
	}
	rec, status := c.pipeline(tx)
	c.cache.Mark(tx.TxID)
	if c.metrics != nil {
		c.metrics.ObserveDecode(rec.Type, status, started)
		c.metrics.SetCacheSize(c.cache.Len())
		if rec.Image != nil {
			c.metrics.ObserveImage(rec.Image.Format, len(rec.Image.Data))
		}
	}
	return rec, true, nil
}

// CacheSize returns the current dedup cache population.
func (c *Classifier) CacheSize() int {
	return c.cache.Len()
}

func (c *Classifier) pipeline(tx model.RawTransaction) (rec *model.DecodedTransaction, status model.DecodeStatus) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("decode degraded",
				zap.String("tx_id", tx.TxID),
				zap.Any("panic", r),
			)
			rec = degradedRecord(tx)
			status = model.StatusDegraded
		}
	}()

	tokens := ExtractTokens(tx)
	fields := DecodeFields(tokens)
	image := ExtractMedia(tokens, tx.Outputs, tx.Body)
	var vote *model.VoteData
	if fields.IsVote() {
		vote = AggregateVote(fields, tokens)
	}
	rec = &model.DecodedTransaction{
		TxID:        tx.TxID,
		BlockHeight: tx.BlockHeight,
		BlockHash:   tx.BlockHash,
		Timestamp:   tx.Timestamp,
		Type:        ClassifyType(fields, image),
		Fields:      fields,
		Content:     fields.Content(),
		Image:       image,
		Vote:        vote,
	}
	return rec, model.StatusDecoded
}

// ClassifyType assigns the semantic type from the decoded fields. The
// evaluation order is load-bearing: a transaction can carry vote and
// lock fields at once and vote must win, matching the protocol's
// precedence rules.
func ClassifyType(fields model.ProtocolFields, image *model.ImageRecord) model.TxType {
	switch {
	case fields.IsVote():
		return model.TxTypeVote
	case fields.IsLocked():
		return model.TxTypeLike
	case image != nil && image.Format != model.FormatUnknown:
		return model.TxTypePost
	case fields.ReplyTo() != "":
		return model.TxTypeReply
	case fields.RepostOf() != "":
		return model.TxTypeRepost
	default:
		return model.TxTypePost
	}
}

// degradedMessage is stored under the "error" field of records emitted
// by the panic recovery path.
const degradedMessage = "decode degraded"

// Degraded reports whether rec is the partial record emitted after an
// internal pipeline failure rather than a clean decode.
func Degraded(rec *model.DecodedTransaction) bool {
	if rec == nil {
		return false
	}
	v, _ := rec.Fields.Get("error")
	return v == degradedMessage
}

func degradedRecord(tx model.RawTransaction) *model.DecodedTransaction {
	return &model.DecodedTransaction{
		TxID:        tx.TxID,
		BlockHeight: tx.BlockHeight,
		BlockHash:   tx.BlockHash,
		Timestamp:   tx.Timestamp,
		Type:        model.TxTypePost,
		Fields:      model.ProtocolFields{"error": degradedMessage},
	}
}
