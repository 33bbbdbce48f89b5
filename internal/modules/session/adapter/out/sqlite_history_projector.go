package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"worklog/internal/modules/session/domain"
	sessionout "worklog/internal/modules/session/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteHistoryProjector keeps a rebuildable projection of completed
// sessions for history queries. The JSON log remains authoritative.
type SQLiteHistoryProjector struct {
	db *sql.DB
}

func NewSQLiteHistoryProjector(dbPath string) (sessionout.HistoryProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteHistoryProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (p *SQLiteHistoryProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sessions (
  tag TEXT NOT NULL,
  start_ts INTEGER NOT NULL,
  end_ts INTEGER NOT NULL,
  seconds INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_tag ON sessions(tag);
`
	if _, err := p.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}

// Rebuild replaces the projection with the completed sessions of the
// given list and reports how many rows were projected.
func (p *SQLiteHistoryProjector) Rebuild(ctx context.Context, sessions []domain.Session) (int, error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin rebuild: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM sessions`); err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("clear sessions: %w", err)
	}
	count := 0
	for _, s := range sessions {
		if s.End == nil {
			continue
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO sessions (tag, start_ts, end_ts, seconds) VALUES (?, ?, ?, ?)`,
			s.Tag, s.Start, *s.End, *s.End-s.Start,
		)
		if err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("insert session: %w", err)
		}
		count++
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit rebuild: %w", err)
	}
	return count, nil
}

func (p *SQLiteHistoryProjector) Recent(ctx context.Context, tag string, limit int) ([]domain.Session, error) {
	query := `SELECT tag, start_ts, end_ts FROM sessions`
	args := []any{}
	if tag != "" {
		query += ` WHERE tag = ?`
		args = append(args, tag)
	}
	query += ` ORDER BY end_ts DESC, rowid DESC LIMIT ?`
	args = append(args, limit)

	rows, err := p.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	out := []domain.Session{}
	for rows.Next() {
		var s domain.Session
		var end int64
		if err := rows.Scan(&s.Tag, &s.Start, &end); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		s.End = &end
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history rows: %w", err)
	}
	return out, nil
}
