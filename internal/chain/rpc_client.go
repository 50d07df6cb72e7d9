// Package chain fetches blocks from a BSV node and reduces them to the
// decoder's input shape.
package chain

import (
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/btcsuite/btcd/wire"
)

// RPCMetrics records metrics for node RPC calls.
type RPCMetrics interface {
	Observe(method string, err error, started time.Time)
}

// RPCClient wraps the btcd rpcclient with metrics instrumentation.
type RPCClient struct {
	client  *rpcclient.Client
	metrics RPCMetrics
}

// NewRPCClient constructs an instrumented RPC client.
func NewRPCClient(client *rpcclient.Client, metrics RPCMetrics) *RPCClient {
	return &RPCClient{
		client:  client,
		metrics: metrics,
	}
}

// GetBlockCount returns the node's best block height.
func (r *RPCClient) GetBlockCount() (count int64, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("get_block_count", err, started)
	}()
	return r.client.GetBlockCount()
}

// GetBlockHash returns the block hash at a height.
func (r *RPCClient) GetBlockHash(height int64) (hash *chainhash.Hash, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("get_block_hash", err, started)
	}()
	return r.client.GetBlockHash(height)
}

// GetBlock returns the full wire block for a hash.
func (r *RPCClient) GetBlock(hash *chainhash.Hash) (block *wire.MsgBlock, err error) {
	started := time.Now()
	defer func() {
		r.metrics.Observe("get_block", err, started)
	}()
	return r.client.GetBlock(hash)
}
