package service

import (
	"context"

	"github.com/lockdapp/lockdex-backend/internal/model"
)

// followerHeightFetcher lists the next heights after the indexing
// watermark, capped at window. An empty result means the chain tip is
// reached.
type followerHeightFetcher struct {
	source      BlockSource
	store       ContentStore
	metrics     IndexerMetrics
	network     model.Network
	startHeight uint64
	window      uint64
}

func (f *followerHeightFetcher) Fetch(ctx context.Context) ([]uint64, error) {
	latest, err := f.source.LatestHeight(ctx)
	if err != nil {
		return nil, err
	}
	f.metrics.SetChainHeight(latest)

	next := f.startHeight
	indexed, ok, err := f.store.MaxIndexedHeight(ctx, f.network)
	if err != nil {
		return nil, err
	}
	if ok && indexed+1 > next {
		next = indexed + 1
	}
	if next > latest {
		return nil, nil
	}

	end := latest
	if f.window > 0 && end > next+f.window-1 {
		end = next + f.window - 1
	}

	heights := make([]uint64, 0, end-next+1)
	for h := next; h <= end; h++ {
		heights = append(heights, h)
	}
	return heights, nil
}

// rangeHeightFetcher walks a fixed height range chunk by chunk. An
// empty result means the range is exhausted. A zero "to" resolves to
// the chain tip on the first call.
type rangeHeightFetcher struct {
	source  BlockSource
	metrics IndexerMetrics
	from    uint64
	to      uint64
	chunk   uint64

	next    uint64
	started bool
}

func (f *rangeHeightFetcher) Fetch(ctx context.Context) ([]uint64, error) {
	if !f.started {
		latest, err := f.source.LatestHeight(ctx)
		if err != nil {
			return nil, err
		}
		f.metrics.SetChainHeight(latest)
		if f.to == 0 || f.to > latest {
			f.to = latest
		}
		f.next = f.from
		f.started = true
	}

	if f.next > f.to {
		return nil, nil
	}

	end := f.next + f.chunk - 1
	if end > f.to || end < f.next {
		end = f.to
	}

	heights := make([]uint64, 0, end-f.next+1)
	for h := f.next; h <= end; h++ {
		heights = append(heights, h)
	}
	f.next = end + 1
	return heights, nil
}
