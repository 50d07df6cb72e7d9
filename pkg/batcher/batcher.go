// Package batcher buffers items and flushes them in rate-limited batches.
package batcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Sink consumes one flushed batch.
type Sink[T any] func(context.Context, []T) error

// Config tunes the flush behavior.
type Config struct {
	// Size flushes the buffer once it holds this many items.
	Size int
	// Interval flushes whatever accumulated at least this often.
	Interval time.Duration
	// RPS caps how many flushes run per second.
	RPS int
}

const (
	defaultSize     = 1000
	defaultInterval = time.Second
	defaultRPS      = 10
)

// Batcher accumulates items and hands them to the sink by size or
// interval, whichever comes first. Closing drains the intake so queued
// items are flushed, not dropped.
type Batcher[T any] struct {
	cfg    Config
	sink   Sink[T]
	limit  ratelimit.Limiter
	logger *zap.Logger

	in   chan T
	done chan struct{}
	wg   sync.WaitGroup
}

// New constructs a Batcher; zero config values take defaults.
func New[T any](cfg Config, sink Sink[T], logger *zap.Logger) *Batcher[T] {
	if cfg.Size <= 0 {
		cfg.Size = defaultSize
	}
	if cfg.Interval <= 0 {
		cfg.Interval = defaultInterval
	}
	if cfg.RPS <= 0 {
		cfg.RPS = defaultRPS
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Batcher[T]{
		cfg:    cfg,
		sink:   sink,
		limit:  ratelimit.New(cfg.RPS),
		logger: logger,
		in:     make(chan T, cfg.Size*2),
		done:   make(chan struct{}),
	}
}

// Start launches the background flush loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.loop(ctx)
}

// Add queues items, blocking while the intake is full.
func (b *Batcher[T]) Add(ctx context.Context, items ...T) error {
	select {
	case <-b.done:
		return context.Canceled
	default:
	}
	for _, item := range items {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case b.in <- item:
		}
	}
	return nil
}

// Close stops the loop after draining and flushing queued items.
func (b *Batcher[T]) Close() {
	close(b.done)
	b.wg.Wait()
}

func (b *Batcher[T]) loop(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.cfg.Interval)
	defer ticker.Stop()

	buf := make([]T, 0, b.cfg.Size)

	for {
		select {
		case <-ctx.Done():
			b.flush(ctx, b.drain(buf))
			return
		case <-b.done:
			b.flush(ctx, b.drain(buf))
			return
		case item := <-b.in:
			buf = append(buf, item)
			if len(buf) >= b.cfg.Size {
				buf = b.flush(ctx, buf)
			}
		case <-ticker.C:
			buf = b.flush(ctx, buf)
		}
	}
}

// drain empties the intake without blocking.
func (b *Batcher[T]) drain(buf []T) []T {
	for {
		select {
		case item := <-b.in:
			buf = append(buf, item)
		default:
			return buf
		}
	}
}

func (b *Batcher[T]) flush(ctx context.Context, buf []T) []T {
	if len(buf) == 0 {
		return buf
	}
	b.limit.Take()
	if err := b.sink(ctx, buf); err != nil {
		b.logger.Error("batch not flushed", zap.Int("items", len(buf)), zap.Error(err))
	} else {
		b.logger.Debug("batch flushed", zap.Int("items", len(buf)))
	}
	return buf[:0]
}
