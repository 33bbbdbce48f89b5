package service

import (
	"context"
	"math"

	"worklog/internal/modules/session/domain"
	"worklog/internal/platform/clock"
	apperrors "worklog/internal/platform/errors"
)

// SessionService applies lifecycle transitions to an in-memory session
// list. Persistence is the usecase's concern; every method returns the
// full list to be saved in one write.
type SessionService struct {
	clock clock.Clock
}

func NewSessionService(clock clock.Clock) *SessionService {
	return &SessionService{clock: clock}
}

func (s *SessionService) Start(_ context.Context, sessions []domain.Session, tag string) ([]domain.Session, domain.Session, error) {
	if _, ok := domain.ActiveIndex(sessions); ok {
		return nil, domain.Session{}, apperrors.ErrSessionRunning
	}
	session := domain.Session{Tag: tag, Start: s.clock.Now().Unix()}
	return append(sessions, session), session, nil
}

func (s *SessionService) Stop(_ context.Context, sessions []domain.Session) ([]domain.Session, domain.Session, error) {
	idx, ok := domain.ActiveIndex(sessions)
	if !ok {
		return nil, domain.Session{}, apperrors.ErrNoActiveSession
	}
	end := s.clock.Now().Unix()
	sessions[idx].End = &end
	return sessions, sessions[idx], nil
}

func (s *SessionService) Status(_ context.Context, sessions []domain.Session) (domain.Session, bool) {
	idx, ok := domain.ActiveIndex(sessions)
	if !ok {
		return domain.Session{}, false
	}
	return sessions[idx], true
}

// Reset discards the running session without keeping any trace of it.
func (s *SessionService) Reset(_ context.Context, sessions []domain.Session) ([]domain.Session, domain.Session, error) {
	idx, ok := domain.ActiveIndex(sessions)
	if !ok {
		return nil, domain.Session{}, apperrors.ErrNoActiveSession
	}
	removed := sessions[idx]
	return append(sessions[:idx], sessions[idx+1:]...), removed, nil
}

// LogHours appends a fully historical session ending now. It never
// touches the active session, so a running timer is unaffected.
func (s *SessionService) LogHours(_ context.Context, sessions []domain.Session, tag string, hours float64) ([]domain.Session, domain.Session, error) {
	if hours <= 0 {
		return nil, domain.Session{}, apperrors.ErrInvalidHours
	}
	end := s.clock.Now().Unix()
	start := end - int64(math.Round(hours*3600))
	session := domain.Session{Tag: tag, Start: start, End: &end}
	return append(sessions, session), session, nil
}
