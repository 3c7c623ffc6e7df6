package storage

import (
	"context"
	"database/sql"
	"fmt"
)

func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		);`,
		// Completed and failed quests, kept for `hl history`.
		`CREATE TABLE IF NOT EXISTS quest_log (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			quest_id TEXT NOT NULL,
			title TEXT NOT NULL,
			outcome TEXT NOT NULL,
			stat TEXT NOT NULL,
			stat_delta INTEGER NOT NULL,
			exp_awarded INTEGER NOT NULL DEFAULT 0,
			recorded_at DATETIME NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_quest_log_recorded_at ON quest_log(recorded_at);`,
		`CREATE INDEX IF NOT EXISTS idx_quest_log_outcome ON quest_log(outcome);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
