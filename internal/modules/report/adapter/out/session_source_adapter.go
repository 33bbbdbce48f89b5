package out

import (
	"context"

	"worklog/internal/modules/report/domain"
	reportout "worklog/internal/modules/report/port/out"
	sessionin "worklog/internal/modules/session/port/in"
)

// SessionSourceAdapter bridges the session module's read side into the
// report engine's own terms.
type SessionSourceAdapter struct {
	sessions sessionin.Usecase
}

func NewSessionSourceAdapter(sessions sessionin.Usecase) reportout.SessionSource {
	return &SessionSourceAdapter{sessions: sessions}
}

func (a *SessionSourceAdapter) ListIntervals(ctx context.Context) ([]domain.Interval, error) {
	sessions, err := a.sessions.List(ctx)
	if err != nil {
		return nil, err
	}
	intervals := make([]domain.Interval, 0, len(sessions))
	for _, s := range sessions {
		iv := domain.Interval{Tag: s.Tag, Start: s.Start}
		if s.Completed {
			end := s.End
			iv.End = &end
		}
		intervals = append(intervals, iv)
	}
	return intervals, nil
}
