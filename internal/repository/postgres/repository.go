// Package postgres is the content store: decoded transactions and
// per-block indexing progress.
package postgres

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver
)

type Metrics interface {
	Observe(operation string, err error, started time.Time)
}

type Repository struct {
	db      *sql.DB
	metrics Metrics
}

// NewRepository opens a pooled connection. The dsn is a standard
// postgres:// URL.
func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	return &Repository{db: db, metrics: metrics}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}
