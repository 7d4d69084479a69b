package database

import (
	"context"
	"fmt"
)

// schema holds the full table definitions for Insteon Link.
//
// The schema is small and stable, so it is created in-place with
// CREATE TABLE IF NOT EXISTS rather than a migration framework.
// Any future column additions must be additive with DEFAULT values
// so existing databases upgrade transparently.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS insteon_devices (
		address TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		kind TEXT NOT NULL,
		firmware TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	) STRICT;`,

	`CREATE INDEX IF NOT EXISTS idx_insteon_devices_kind
		ON insteon_devices(kind);`,
}

// Bootstrap creates all required tables if they do not exist.
//
// It runs in a single transaction so a partially created schema never
// persists. Safe to call on every startup.
//
// Parameters:
//   - ctx: Context for timeout/cancellation
//
// Returns:
//   - error: If any statement fails
func (db *DB) Bootstrap(ctx context.Context) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting schema transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op if committed

	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing schema: %w", err)
	}
	return nil
}
