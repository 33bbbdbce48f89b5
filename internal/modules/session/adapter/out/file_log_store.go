package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"worklog/internal/modules/session/domain"
	sessionout "worklog/internal/modules/session/port/out"
	apperrors "worklog/internal/platform/errors"
)

// FileLogStore persists the session list as a single JSON array.
// Saves go through a temp file in the same directory followed by a
// rename, so a crash mid-write never truncates the log.
type FileLogStore struct {
	path string
}

func NewFileLogStore(path string) sessionout.LogStore {
	return &FileLogStore{path: path}
}

func (s *FileLogStore) Load(_ context.Context) ([]domain.Session, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Session{}, nil
		}
		return nil, fmt.Errorf("read work log: %w", err)
	}
	sessions := []domain.Session{}
	if err := json.Unmarshal(payload, &sessions); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, apperrors.ErrCorruptLog)
	}
	return sessions, nil
}

func (s *FileLogStore) Save(_ context.Context, sessions []domain.Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	payload, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return fmt.Errorf("encode work log: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "log-*.json")
	if err != nil {
		return fmt.Errorf("create temp log: %w", err)
	}
	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write work log: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("close temp log: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("replace work log: %w", err)
	}
	return nil
}

func (s *FileLogStore) Path() string {
	return s.path
}
