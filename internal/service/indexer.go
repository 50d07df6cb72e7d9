// Package service runs the indexing pipelines: chain follower and
// history backfill, both feeding the content and analytics stores
// through a shared batching writer.
package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/lockdapp/lockdex-backend/internal/chain"
	"github.com/lockdapp/lockdex-backend/internal/model"
)

const (
	// followerWorkerCount stays 1 so blocks finish in height order and
	// the indexing watermark never moves past an unprocessed block.
	followerWorkerCount = 1
	followerWindow      = 100

	sleepDuration     = 5 * time.Second
	longSleepDuration = 1 * time.Minute
)

// FollowerIndexerService keeps the content store in step with the
// chain tip.
type FollowerIndexerService struct {
	logger            *zap.Logger
	network           model.Network
	metrics           IndexerMetrics
	sleep             func(context.Context, time.Duration) error
	sleepDuration     time.Duration
	longSleepDuration time.Duration
	heightFetcher     HeightFetcher
	blockProcessor    BlockProcessor
	blockWriter       BlockWriter
	blockSignal       <-chan struct{}
}

// NewFollowerIndexerService builds a FollowerIndexerService with dependencies.
func NewFollowerIndexerService(
	source BlockSource,
	txDecoder TransactionDecoder,
	store ContentStore,
	events EventStore,
	metrics IndexerMetrics,
	network model.Network,
	startHeight uint64,
	logger *zap.Logger,
	blockSignal <-chan struct{},
) (*FollowerIndexerService, error) {
	logger = logger.With(zap.String("network", string(network)))
	if metrics == nil {
		return nil, errors.New("indexer metrics is required")
	}
	params, err := chain.ParamsForNetwork(network)
	if err != nil {
		return nil, err
	}

	w := newContentWriter(store, events, logger)

	return &FollowerIndexerService{
		logger:            logger,
		network:           network,
		metrics:           metrics,
		sleep:             sleepWithContext,
		sleepDuration:     sleepDuration,
		longSleepDuration: longSleepDuration,
		blockSignal:       blockSignal,
		heightFetcher: &followerHeightFetcher{
			source:      source,
			store:       store,
			metrics:     metrics,
			network:     network,
			startHeight: startHeight,
			window:      followerWindow,
		},
		blockWriter: w,
		blockProcessor: &blockProcessor{
			workerCount: followerWorkerCount,
			source:      source,
			decoder:     txDecoder,
			writer:      w,
			params:      params,
			network:     network,
			metrics:     metrics,
			logger:      logger.Named("blockProcessor"),
		},
	}, nil
}

// Run starts the follower loop until the context is canceled.
func (s *FollowerIndexerService) Run(ctx context.Context) error {
	wCtx, wCancel := context.WithCancel(ctx)
	s.blockProcessor.SetCancelWriter(wCancel)

	s.blockWriter.Start(wCtx)
	defer func() {
		s.blockWriter.Stop()
		wCancel()
	}()

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := s.run(ctx); err != nil {
			s.logger.Warn("run iteration failed, backing off", zap.Error(err), zap.Duration("sleep", s.sleepDuration))
			if sleepErr := s.wait(ctx, s.sleepDuration); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (s *FollowerIndexerService) run(ctx context.Context) error {
	started := time.Now()
	heights, err := s.heightFetcher.Fetch(ctx)
	s.metrics.ObserveFetchHeights(err, len(heights), started)
	if err != nil {
		s.logger.Error("fetch heights failed", zap.Error(err))
		return err
	}

	if len(heights) == 0 {
		s.logger.Debug("chain tip reached; waiting", zap.Duration("sleep", s.longSleepDuration))
		return s.wait(ctx, s.longSleepDuration)
	}

	s.logger.Info("indexing blocks",
		zap.Uint64("from", heights[0]),
		zap.Uint64("to", heights[len(heights)-1]),
	)
	if err = s.blockProcessor.Process(ctx, heights); err != nil {
		s.logger.Error("process window failed", zap.Int("heights", len(heights)), zap.Error(err))
		return err
	}
	s.metrics.SetIndexedHeight(heights[len(heights)-1])

	return s.wait(ctx, s.sleepDuration)
}

func (s *FollowerIndexerService) wait(ctx context.Context, d time.Duration) error {
	if s.blockSignal == nil {
		return s.sleep(ctx, d)
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.blockSignal:
		return nil
	case <-timer.C:
		return nil
	}
}

// sleepWithContext pauses for d or until ctx is done.
func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
