package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/lockdapp/lockdex-backend/internal/model"
)

const defaultRecentLimit = 50

// RecentContent returns the newest decoded records, canonical chain
// order first.
func (r *Repository) RecentContent(ctx context.Context, network model.Network, limit int) ([]model.ContentRecord, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("recent_content", err, start)
	}()

	if limit <= 0 {
		limit = defaultRecentLimit
	}

	query := `
SELECT ` + contentColumns + `
FROM content
WHERE network = $1
ORDER BY block_height DESC, timestamp DESC, txid
LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, string(network), limit)
	if err != nil {
		return nil, fmt.Errorf("query recent content: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var records []model.ContentRecord
	for rows.Next() {
		var rec model.ContentRecord
		rec, err = scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan content row: %w", err)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recent content: %w", err)
	}
	return records, nil
}
