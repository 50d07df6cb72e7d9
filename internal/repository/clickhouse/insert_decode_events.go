package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/lockdapp/lockdex-backend/internal/model"
)

const insertDecodeEventsQuery = `
INSERT INTO decode_events (
	network,
	txid,
	block_height,
	block_time,
	type,
	status,
	field_count,
	image_format,
	image_size,
	vote_options,
	duration_ms
) VALUES`

// InsertDecodeEvents stores one row per decode attempt.
func (r *Repository) InsertDecodeEvents(ctx context.Context, events []model.DecodeEvent) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_decode_events", err, start)
	}()

	if len(events) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertDecodeEventsQuery)
	if err != nil {
		return fmt.Errorf("prepare decode events batch: %w", err)
	}

	for _, event := range events {
		if err = batch.Append(
			string(event.Network),
			event.TxID,
			event.BlockHeight,
			event.BlockTime,
			string(event.Type),
			string(event.Status),
			event.FieldCount,
			event.ImageFormat,
			event.ImageSize,
			event.VoteOptions,
			event.DurationMs,
		); err != nil {
			return fmt.Errorf("append decode event: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert decode events: %w", err)
	}
	return nil
}
