package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lockdapp/lockdex-backend/internal/model"
)

// ContentByTxID loads one decoded record. ok is false on a miss.
func (r *Repository) ContentByTxID(ctx context.Context, network model.Network, txID string) (rec model.ContentRecord, ok bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("content_by_txid", err, start)
	}()

	query := `
SELECT ` + contentColumns + `
FROM content
WHERE network = $1 AND txid = $2`

	rec, err = scanContent(r.db.QueryRowContext(ctx, query, string(network), txID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = nil
			return model.ContentRecord{}, false, nil
		}
		return model.ContentRecord{}, false, fmt.Errorf("query content by txid: %w", err)
	}
	return rec, true, nil
}
