package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/lockdapp/lockdex-backend/internal/model"
)

const insertIndexedBlocksQuery = `
INSERT INTO indexed_blocks (
	network, height, hash, timestamp, tx_count, content_count
) VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (network, height) DO UPDATE SET
	hash = EXCLUDED.hash,
	timestamp = EXCLUDED.timestamp,
	tx_count = EXCLUDED.tx_count,
	content_count = EXCLUDED.content_count`

// InsertIndexedBlocks records fully processed blocks. A block seen
// again, e.g. after a reorg, replaces its earlier row.
func (r *Repository) InsertIndexedBlocks(ctx context.Context, blocks []model.IndexedBlock) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_indexed_blocks", err, start)
	}()

	if len(blocks) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert indexed blocks: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx, insertIndexedBlocksQuery)
	if err != nil {
		return fmt.Errorf("prepare insert indexed blocks: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for _, block := range blocks {
		if _, err = stmt.ExecContext(ctx,
			string(block.Network),
			int64(block.Height),
			block.Hash,
			block.Timestamp,
			int64(block.TxCount),
			int64(block.ContentCount),
		); err != nil {
			return fmt.Errorf("insert indexed block %d: %w", block.Height, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit insert indexed blocks: %w", err)
	}
	return nil
}
