package database

import (
	"context"
	"fmt"
)

// schema is applied in order; every statement is idempotent.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS movies (
		id          BIGSERIAL PRIMARY KEY,
		title       VARCHAR(255) NOT NULL,
		year        INTEGER NOT NULL DEFAULT 0,
		description TEXT NOT NULL DEFAULT '',
		rating      DOUBLE PRECISION NOT NULL DEFAULT 0,
		ranking     INTEGER NOT NULL DEFAULT 0,
		review      VARCHAR(255) NOT NULL DEFAULT 'n/a',
		image_url   VARCHAR(512) NOT NULL DEFAULT '',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS movies_title_key ON movies (title)`,
	`CREATE INDEX IF NOT EXISTS movies_rating_idx ON movies (rating DESC, id ASC)`,
}

// Migrate creates the catalog schema if it does not exist yet.
func Migrate(ctx context.Context, db PgxIface) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	defer tx.Rollback(ctx)

	for i, stmt := range schema {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration step %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}
	return nil
}
