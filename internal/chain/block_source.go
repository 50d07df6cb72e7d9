package chain

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"

	"github.com/lockdapp/lockdex-backend/internal/model"
	"github.com/lockdapp/lockdex-backend/pkg/safe"
)

// RPC is the node surface the block source relies on.
type RPC interface {
	GetBlockCount() (int64, error)
	GetBlockHash(height int64) (*chainhash.Hash, error)
	GetBlock(hash *chainhash.Hash) (*wire.MsgBlock, error)
}

// Block is one fetched block reduced to decoder inputs. TxCount counts
// every transaction in the block; Transactions holds only the kept
// data-carrying ones.
type Block struct {
	Height       uint64
	Hash         string
	Timestamp    time.Time
	TxCount      uint32
	Transactions []model.RawTransaction
}

// BlockSource fetches blocks and keeps the transactions worth
// decoding: those with at least one data-carrier output, and, when a
// protocol tag is configured, only those mentioning the tag.
type BlockSource struct {
	rpc     RPC
	network model.Network
	tag     string
}

// NewBlockSource constructs a BlockSource. An empty tag keeps every
// data-carrying transaction.
func NewBlockSource(rpc RPC, network model.Network, tag string) *BlockSource {
	return &BlockSource{
		rpc:     rpc,
		network: network,
		tag:     tag,
	}
}

// LatestHeight returns the node's best height.
func (s *BlockSource) LatestHeight(_ context.Context) (uint64, error) {
	count, err := s.rpc.GetBlockCount()
	if err != nil {
		return 0, err
	}
	height, err := safe.Uint64(count)
	if err != nil {
		return 0, fmt.Errorf("block count overflow: %w", err)
	}
	return height, nil
}

// FetchBlock retrieves the block at height and converts its kept
// transactions.
func (s *BlockSource) FetchBlock(ctx context.Context, height uint64) (*Block, error) {
	rpcHeight, err := safe.Int64(height)
	if err != nil {
		return nil, fmt.Errorf("block height %d exceeds rpc limit", height)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hash, err := s.rpc.GetBlockHash(rpcHeight)
	if err != nil {
		return nil, fmt.Errorf("get block hash at height %d: %w", height, err)
	}
	src, err := s.rpc.GetBlock(hash)
	if err != nil {
		return nil, fmt.Errorf("get block %s: %w", hash, err)
	}
	txCount, err := safe.Uint32(len(src.Transactions))
	if err != nil {
		return nil, fmt.Errorf("block %d tx count overflow: %w", height, err)
	}

	block := &Block{
		Height:    height,
		Hash:      hash.String(),
		Timestamp: src.Header.Timestamp.UTC(),
		TxCount:   txCount,
	}
	for _, tx := range src.Transactions {
		if !s.keep(tx) {
			continue
		}
		raw, err := RawFromWire(tx, height, block.Hash, block.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", height, err)
		}
		block.Transactions = append(block.Transactions, raw)
	}
	return block, nil
}

func (s *BlockSource) keep(tx *wire.MsgTx) bool {
	if s.tag != "" {
		return CarriesTag(tx, s.tag)
	}
	return HasDataCarrier(tx)
}
