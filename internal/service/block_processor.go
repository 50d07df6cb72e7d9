package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lockdapp/lockdex-backend/internal/chain"
	"github.com/lockdapp/lockdex-backend/internal/decoder"
	"github.com/lockdapp/lockdex-backend/internal/model"
	"github.com/lockdapp/lockdex-backend/pkg/workerpool"

	"github.com/btcsuite/btcd/chaincfg"
)

type blockProcessor struct {
	workerCount  int
	source       BlockSource
	decoder      TransactionDecoder
	writer       BlockWriter
	params       *chaincfg.Params
	network      model.Network
	metrics      IndexerMetrics
	logger       *zap.Logger
	cancelWriter func()
}

func (p *blockProcessor) SetCancelWriter(cancel func()) {
	p.cancelWriter = cancel
}

func (p *blockProcessor) Process(ctx context.Context, heights []uint64) error {
	err := workerpool.Run(ctx, p.workerCount, heights, p.processHeight)
	if err != nil && p.cancelWriter != nil {
		p.cancelWriter()
	}
	return err
}

func (p *blockProcessor) processHeight(ctx context.Context, height uint64) error {
	started := time.Now()
	block, err := p.source.FetchBlock(ctx, height)
	if err != nil {
		p.observeBlock(err, 0, started)
		if p.logger != nil {
			p.logger.Error("fetch block failed", zap.Uint64("height", height), zap.Error(err))
		}
		return fmt.Errorf("fetch block height %d: %w", height, err)
	}

	err = p.writer.WriteBatch(ctx, p.decodeBlock(block))
	p.observeBlock(err, len(block.Transactions), started)
	if err != nil {
		if p.logger != nil {
			p.logger.Error("write block failed", zap.Uint64("height", height), zap.Error(err))
		}
		return fmt.Errorf("write block height %d: %w", height, err)
	}
	return nil
}

// decodeBlock turns every carrier transaction of the block into a
// content record plus a decode event and bundles them with the
// block's progress marker.
func (p *blockProcessor) decodeBlock(block *chain.Block) model.InsertBatch {
	batch := model.InsertBatch{
		Block: model.IndexedBlock{
			Network:   p.network,
			Height:    block.Height,
			Hash:      block.Hash,
			Timestamp: block.Timestamp,
			TxCount:   block.TxCount,
		},
	}

	for _, tx := range block.Transactions {
		started := time.Now()
		rec, ok, err := p.decoder.Decode(tx)
		if err != nil {
			if p.logger != nil {
				p.logger.Warn("transaction rejected", zap.String("tx_id", tx.TxID), zap.Error(err))
			}
			continue
		}
		if !ok {
			batch.Events = append(batch.Events, newDecodeEvent(p.network, tx, nil, model.StatusSkipped, started))
			continue
		}

		status := model.StatusDecoded
		if decoder.Degraded(rec) {
			status = model.StatusDegraded
		}
		content := newContentRecord(p.network, rec)
		content.AuthorAddress = chain.AuthorAddress(tx.Outputs, p.params)
		batch.Content = append(batch.Content, content)
		batch.Events = append(batch.Events, newDecodeEvent(p.network, tx, rec, status, started))
	}

	batch.Block.ContentCount = uint32(len(batch.Content))
	return batch
}

func (p *blockProcessor) observeBlock(err error, txs int, started time.Time) {
	if p.metrics == nil {
		return
	}
	p.metrics.ObserveProcessBlock(err, txs, started)
}

func newContentRecord(network model.Network, rec *model.DecodedTransaction) model.ContentRecord {
	out := model.ContentRecord{
		Network:     network,
		TxID:        rec.TxID,
		BlockHeight: rec.BlockHeight,
		BlockHash:   rec.BlockHash,
		Timestamp:   rec.Timestamp,
		Type:        rec.Type,
		Content:     rec.Content,
		Fields:      rec.Fields,
		ReplyTo:     rec.Fields.ReplyTo(),
		RepostOf:    rec.Fields.RepostOf(),
	}
	if amount, ok := rec.Fields.LockAmount(); ok {
		out.LockAmount = amount
	}
	if duration, ok := rec.Fields.LockDuration(); ok {
		out.LockDuration = duration
	}
	if rec.Vote != nil {
		out.VoteQuestion = rec.Vote.Question
		out.VoteOptions = rec.Vote.Options
		out.OptionsHash = rec.Vote.OptionsHash
	}
	if rec.Image != nil {
		out.ImageFormat = string(rec.Image.Format)
		out.ImageType = rec.Image.ContentType
		out.ImageSize = uint32(len(rec.Image.Data))
		out.ImageWidth = rec.Image.Width
		out.ImageHeight = rec.Image.Height
		out.ImageAnimated = rec.Image.IsAnimated
	}
	return out
}

func newDecodeEvent(network model.Network, tx model.RawTransaction, rec *model.DecodedTransaction, status model.DecodeStatus, started time.Time) model.DecodeEvent {
	e := model.DecodeEvent{
		Network:     network,
		TxID:        tx.TxID,
		BlockHeight: tx.BlockHeight,
		BlockTime:   tx.Timestamp,
		Status:      status,
		DurationMs:  uint64(time.Since(started).Milliseconds()),
	}
	if rec == nil {
		return e
	}
	e.Type = rec.Type
	e.FieldCount = uint32(len(rec.Fields))
	if rec.Image != nil {
		e.ImageFormat = string(rec.Image.Format)
		e.ImageSize = uint32(len(rec.Image.Data))
	}
	if rec.Vote != nil {
		e.VoteOptions = uint32(len(rec.Vote.Options))
	}
	return e
}
