package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// LogRepo records quest outcomes (completions and failures).
type LogRepo struct {
	db *sql.DB
}

func NewLogRepo(db *sql.DB) *LogRepo {
	return &LogRepo{db: db}
}

func (r *LogRepo) Insert(ctx context.Context, e LogEntry) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO quest_log (quest_id, title, outcome, stat, stat_delta, exp_awarded, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, e.QuestID, e.Title, e.Outcome, e.Stat, e.StatDelta, e.ExpAwarded, e.RecordedAt)
	if err != nil {
		return 0, fmt.Errorf("quest log insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("quest log last insert id: %w", err)
	}
	return id, nil
}

// ListRecent returns up to limit entries, newest first.
func (r *LogRepo) ListRecent(ctx context.Context, limit int) ([]LogEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, quest_id, title, outcome, stat, stat_delta, exp_awarded, recorded_at
		FROM quest_log
		ORDER BY recorded_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("quest log list: %w", err)
	}
	defer rows.Close()

	var out []LogEntry
	for rows.Next() {
		var e LogEntry
		if err := rows.Scan(&e.ID, &e.QuestID, &e.Title, &e.Outcome, &e.Stat, &e.StatDelta, &e.ExpAwarded, &e.RecordedAt); err != nil {
			return nil, fmt.Errorf("quest log scan: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("quest log rows: %w", err)
	}
	return out, nil
}

func (r *LogRepo) CountByOutcome(ctx context.Context, outcome string) (int, error) {
	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM quest_log WHERE outcome = ?`, outcome)
	var n int
	if err := row.Scan(&n); err != nil {
		return 0, fmt.Errorf("quest log count: %w", err)
	}
	return n, nil
}

func (r *LogRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM quest_log`); err != nil {
		return fmt.Errorf("quest log clear: %w", err)
	}
	return nil
}
