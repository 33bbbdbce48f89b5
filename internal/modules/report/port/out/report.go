package out

import (
	"context"

	"worklog/internal/modules/report/domain"
)

// SessionSource feeds tracked intervals to the report engine.
type SessionSource interface {
	ListIntervals(ctx context.Context) ([]domain.Interval, error)
}
