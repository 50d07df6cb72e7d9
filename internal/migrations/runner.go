// Package migrations applies the SQL migration files shipped under
// the repo's migrations/ directory.
package migrations

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Run applies every pending migration from dir against dsn. The
// database driver matching the DSN scheme must be linked by the
// calling binary. Nothing left to apply is not an error.
func Run(ctx context.Context, dsn, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve migrations dir: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("stat migrations dir %s: %w", abs, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", abs)
	}

	sourceURL := fmt.Sprintf("file://%s", filepath.ToSlash(abs))
	m, err := migrate.New(sourceURL, dsn)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			log.Printf("migration source close error: %v", srcErr)
		}
		if dbErr != nil {
			log.Printf("migration database close error: %v", dbErr)
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("no migrations to apply")
			return nil
		}
		return err
	}

	log.Println("migrations applied successfully")
	return nil
}
