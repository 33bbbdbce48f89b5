package out

import (
	"context"

	"worklog/internal/modules/session/domain"
)

// LogStore owns the durable session list.
type LogStore interface {
	Load(ctx context.Context) ([]domain.Session, error)
	Save(ctx context.Context, sessions []domain.Session) error
	Path() string
}

// HistoryProjector maintains a queryable projection of completed
// sessions. The JSON log stays the source of truth.
type HistoryProjector interface {
	Rebuild(ctx context.Context, sessions []domain.Session) (int, error)
	Recent(ctx context.Context, tag string, limit int) ([]domain.Session, error)
}
