package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/lockdapp/lockdex-backend/internal/model"
)

const insertContentQuery = `
INSERT INTO content (
	network, txid, block_height, block_hash, timestamp, type, content,
	author_address, fields, lock_amount, lock_duration, reply_to, repost_of,
	vote_question, vote_options, options_hash, image_format, image_type,
	image_size, image_width, image_height, image_animated
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
ON CONFLICT (network, txid) DO UPDATE SET
	block_height = EXCLUDED.block_height,
	block_hash = EXCLUDED.block_hash,
	timestamp = EXCLUDED.timestamp,
	type = EXCLUDED.type,
	content = EXCLUDED.content,
	author_address = EXCLUDED.author_address,
	fields = EXCLUDED.fields,
	lock_amount = EXCLUDED.lock_amount,
	lock_duration = EXCLUDED.lock_duration,
	reply_to = EXCLUDED.reply_to,
	repost_of = EXCLUDED.repost_of,
	vote_question = EXCLUDED.vote_question,
	vote_options = EXCLUDED.vote_options,
	options_hash = EXCLUDED.options_hash,
	image_format = EXCLUDED.image_format,
	image_type = EXCLUDED.image_type,
	image_size = EXCLUDED.image_size,
	image_width = EXCLUDED.image_width,
	image_height = EXCLUDED.image_height,
	image_animated = EXCLUDED.image_animated`

// InsertContent upserts decoded records keyed by (network, txid).
// Re-decoding a transaction replaces its earlier row.
func (r *Repository) InsertContent(ctx context.Context, records []model.ContentRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_content", err, start)
	}()

	if len(records) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert content: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx, insertContentQuery)
	if err != nil {
		return fmt.Errorf("prepare insert content: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for _, rec := range records {
		var fields, options []byte
		fields, err = fieldsJSON(rec.Fields)
		if err != nil {
			return fmt.Errorf("encode fields for %s: %w", rec.TxID, err)
		}
		options, err = optionsJSON(rec.VoteOptions)
		if err != nil {
			return fmt.Errorf("encode vote options for %s: %w", rec.TxID, err)
		}

		if _, err = stmt.ExecContext(ctx,
			string(rec.Network),
			rec.TxID,
			int64(rec.BlockHeight),
			rec.BlockHash,
			rec.Timestamp,
			string(rec.Type),
			rec.Content,
			rec.AuthorAddress,
			fields,
			int64(rec.LockAmount),
			int64(rec.LockDuration),
			rec.ReplyTo,
			rec.RepostOf,
			rec.VoteQuestion,
			options,
			rec.OptionsHash,
			rec.ImageFormat,
			rec.ImageType,
			int64(rec.ImageSize),
			int64(rec.ImageWidth),
			int64(rec.ImageHeight),
			rec.ImageAnimated,
		); err != nil {
			return fmt.Errorf("insert content %s: %w", rec.TxID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit insert content: %w", err)
	}
	return nil
}
