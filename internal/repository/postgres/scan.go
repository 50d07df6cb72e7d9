package postgres

import (
	"encoding/json"
	"fmt"

	"github.com/lockdapp/lockdex-backend/internal/model"
)

const contentColumns = `network, txid, block_height, block_hash, timestamp, type, content,
	author_address, fields, lock_amount, lock_duration, reply_to, repost_of,
	vote_question, vote_options, options_hash, image_format, image_type,
	image_size, image_width, image_height, image_animated`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanContent(row rowScanner) (model.ContentRecord, error) {
	var (
		rec     model.ContentRecord
		network string
		txType  string
		fields  []byte
		options []byte
	)
	if err := row.Scan(
		&network,
		&rec.TxID,
		&rec.BlockHeight,
		&rec.BlockHash,
		&rec.Timestamp,
		&txType,
		&rec.Content,
		&rec.AuthorAddress,
		&fields,
		&rec.LockAmount,
		&rec.LockDuration,
		&rec.ReplyTo,
		&rec.RepostOf,
		&rec.VoteQuestion,
		&options,
		&rec.OptionsHash,
		&rec.ImageFormat,
		&rec.ImageType,
		&rec.ImageSize,
		&rec.ImageWidth,
		&rec.ImageHeight,
		&rec.ImageAnimated,
	); err != nil {
		return model.ContentRecord{}, err
	}

	rec.Network = model.Network(network)
	rec.Type = model.TxType(txType)
	if len(fields) > 0 && string(fields) != "{}" {
		if err := json.Unmarshal(fields, &rec.Fields); err != nil {
			return model.ContentRecord{}, fmt.Errorf("decode fields of %s: %w", rec.TxID, err)
		}
	}
	if len(options) > 0 && string(options) != "[]" {
		if err := json.Unmarshal(options, &rec.VoteOptions); err != nil {
			return model.ContentRecord{}, fmt.Errorf("decode vote options of %s: %w", rec.TxID, err)
		}
	}
	return rec, nil
}

// fieldsJSON keeps the fields column non-null so jsonb queries do not
// trip over SQL NULL.
func fieldsJSON(fields map[string]string) ([]byte, error) {
	if len(fields) == 0 {
		return []byte("{}"), nil
	}
	return json.Marshal(fields)
}

func optionsJSON(options []model.VoteOption) ([]byte, error) {
	if len(options) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(options)
}
