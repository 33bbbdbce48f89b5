package in

import (
	"context"

	"worklog/internal/modules/session/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error)
	Stop(ctx context.Context) (dto.StopOutput, error)
	Status(ctx context.Context) (dto.StatusOutput, error)
	Reset(ctx context.Context) (dto.ResetOutput, error)
	LogHours(ctx context.Context, input dto.LogInput) (dto.LogOutput, error)
	List(ctx context.Context) ([]dto.SessionOutput, error)
	History(ctx context.Context, input dto.HistoryInput) ([]dto.HistoryEntry, error)
	Reindex(ctx context.Context) (int, error)
	LogPath() string
}
