package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lockdapp/lockdex-backend/internal/model"
)

// MaxIndexedHeight returns the highest processed block height for a
// network. ok is false when nothing is indexed yet.
func (r *Repository) MaxIndexedHeight(ctx context.Context, network model.Network) (height uint64, ok bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("max_indexed_height", err, start)
	}()

	const query = `
SELECT height
FROM indexed_blocks
WHERE network = $1
ORDER BY height DESC
LIMIT 1`

	if err = r.db.QueryRowContext(ctx, query, string(network)).Scan(&height); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = nil
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("query max indexed height: %w", err)
	}
	return height, true, nil
}
