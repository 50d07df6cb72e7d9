package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lockdapp/lockdex-backend/internal/chain"
	"github.com/lockdapp/lockdex-backend/internal/model"
)

const (
	historyWorkerCount = 8
	historyChunkSize   = 1000
)

// HistoryIndexerService backfills a fixed height range and returns
// when the range is done.
type HistoryIndexerService struct {
	logger         *zap.Logger
	network        model.Network
	metrics        IndexerMetrics
	heightFetcher  HeightFetcher
	blockProcessor BlockProcessor
	blockWriter    BlockWriter
}

// NewHistoryIndexerService builds a HistoryIndexerService covering
// heights fromHeight through toHeight. A zero toHeight runs to the
// chain tip.
func NewHistoryIndexerService(
	source BlockSource,
	txDecoder TransactionDecoder,
	store ContentStore,
	events EventStore,
	metrics IndexerMetrics,
	network model.Network,
	fromHeight, toHeight uint64,
	logger *zap.Logger,
) (*HistoryIndexerService, error) {
	logger = logger.With(zap.String("network", string(network)))
	if metrics == nil {
		return nil, errors.New("indexer metrics is required")
	}
	if toHeight != 0 && fromHeight > toHeight {
		return nil, fmt.Errorf("invalid backfill range %d..%d", fromHeight, toHeight)
	}
	params, err := chain.ParamsForNetwork(network)
	if err != nil {
		return nil, err
	}

	w := newContentWriter(store, events, logger)

	return &HistoryIndexerService{
		logger:  logger,
		network: network,
		metrics: metrics,
		heightFetcher: &rangeHeightFetcher{
			source:  source,
			metrics: metrics,
			from:    fromHeight,
			to:      toHeight,
			chunk:   historyChunkSize,
		},
		blockWriter: w,
		blockProcessor: &blockProcessor{
			workerCount: historyWorkerCount,
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

// Run processes the configured range and returns nil once every chunk
// is written.
func (s *HistoryIndexerService) Run(ctx context.Context) error {
	wCtx, wCancel := context.WithCancel(ctx)
	s.blockProcessor.SetCancelWriter(wCancel)

	s.blockWriter.Start(wCtx)
	defer func() {
		// Stop before cancel so the final flush still has a live
		// context when the range completed cleanly.
		s.blockWriter.Stop()
		wCancel()
	}()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		done, err := s.run(ctx)
		if err != nil {
			return err
		}
		if done {
			s.logger.Info("backfill complete")
			return nil
		}
	}
}

func (s *HistoryIndexerService) run(ctx context.Context) (bool, error) {
	started := time.Now()
	heights, err := s.heightFetcher.Fetch(ctx)
	s.metrics.ObserveFetchHeights(err, len(heights), started)
	if err != nil {
		s.logger.Error("fetch backfill heights failed", zap.Error(err))
		return false, err
	}

	if len(heights) == 0 {
		return true, nil
	}

	s.logger.Info("processing chunk",
		zap.Uint64("from", heights[0]),
		zap.Uint64("to", heights[len(heights)-1]),
		zap.Int("heights", len(heights)),
	)
	if err = s.blockProcessor.Process(ctx, heights); err != nil {
		s.logger.Error("process chunk failed", zap.Int("heights", len(heights)), zap.Error(err))
		return false, err
	}
	s.metrics.SetIndexedHeight(heights[len(heights)-1])

	return false, nil
}
