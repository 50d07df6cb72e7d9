package service

import (
	"context"
	"time"

	"github.com/lockdapp/lockdex-backend/internal/chain"
	"github.com/lockdapp/lockdex-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	HeightFetcher interface {
		Fetch(ctx context.Context) ([]uint64, error)
	}
	BlockProcessor interface {
		Process(ctx context.Context, heights []uint64) error
		SetCancelWriter(cancel func())
	}
	BlockWriter interface {
		Start(ctx context.Context)
		Stop()
		WriteBatch(ctx context.Context, b model.InsertBatch) error
	}

	IndexerMetrics interface {
		ObserveFetchHeights(err error, heights int, started time.Time)
		ObserveProcessBlock(err error, txs int, started time.Time)
		SetChainHeight(height uint64)
		SetIndexedHeight(height uint64)
	}

	BlockSource interface {
		LatestHeight(ctx context.Context) (uint64, error)
		FetchBlock(ctx context.Context, height uint64) (*chain.Block, error)
	}
	TransactionDecoder interface {
		Decode(tx model.RawTransaction) (*model.DecodedTransaction, bool, error)
	}
	ContentStore interface {
		MaxIndexedHeight(ctx context.Context, network model.Network) (uint64, bool, error)
		InsertContent(ctx context.Context, records []model.ContentRecord) error
		InsertIndexedBlocks(ctx context.Context, blocks []model.IndexedBlock) error
	}
	EventStore interface {
		InsertDecodeEvents(ctx context.Context, events []model.DecodeEvent) error
	}
)
