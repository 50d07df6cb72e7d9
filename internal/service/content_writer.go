package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/lockdapp/lockdex-backend/internal/model"
	"github.com/lockdapp/lockdex-backend/pkg/batcher"
)

const (
	writeBatcherCapacity      = 64
	writeBatcherFlushInterval = 5 * time.Second

	contentFlushThreshold = 500
	eventFlushThreshold   = 2000
)

// contentWriter buffers processed blocks and flushes them to both
// stores in batches.
type contentWriter struct {
	store   ContentStore
	events  EventStore
	logger  *zap.Logger
	batcher *batcher.Batcher[model.InsertBatch]
}

func newContentWriter(store ContentStore, events EventStore, logger *zap.Logger) *contentWriter {
	w := &contentWriter{
		store:  store,
		events: events,
		logger: logger,
	}
	w.batcher = batcher.New[model.InsertBatch](batcher.Config{
		Size:     writeBatcherCapacity,
		Interval: writeBatcherFlushInterval,
	}, w.flush, logger.Named("writeBatcher"))
	return w
}

func (w *contentWriter) Start(ctx context.Context) {
	w.batcher.Start(ctx)
}

func (w *contentWriter) Stop() {
	w.batcher.Close()
}

func (w *contentWriter) WriteBatch(ctx context.Context, b model.InsertBatch) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return w.batcher.Add(ctx, b)
}

func (w *contentWriter) flush(ctx context.Context, batches []model.InsertBatch) error {
	blocks := make([]model.IndexedBlock, 0, len(batches))
	content := make([]model.ContentRecord, 0, len(batches))
	events := make([]model.DecodeEvent, 0, len(batches))

	for _, b := range batches {
		blocks = append(blocks, b.Block)

		content = append(content, b.Content...)
		if len(content) >= contentFlushThreshold {
			if err := w.store.InsertContent(ctx, content); err != nil {
				return err
			}
			w.logger.Debug("InsertContent", zap.Int("count", len(content)))
			content = content[:0]
		}

		events = append(events, b.Events...)
		if len(events) >= eventFlushThreshold {
			if err := w.events.InsertDecodeEvents(ctx, events); err != nil {
				return err
			}
			w.logger.Debug("InsertDecodeEvents", zap.Int("count", len(events)))
			events = events[:0]
		}
	}

	if err := w.store.InsertContent(ctx, content); err != nil {
		return err
	}
	if err := w.events.InsertDecodeEvents(ctx, events); err != nil {
		return err
	}

	// Progress markers go last so a failed insert leaves its blocks
	// unmarked and they are picked up again after a restart.
	return w.store.InsertIndexedBlocks(ctx, blocks)
}
