package in

import (
	"context"

	sessiondto "worklog/internal/modules/session/dto"
	sessionin "worklog/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, tag string) (sessiondto.StartOutput, error) {
	return h.usecase.Start(ctx, sessiondto.StartInput{Tag: tag})
}

func (h CLIHandler) Stop(ctx context.Context) (sessiondto.StopOutput, error) {
	return h.usecase.Stop(ctx)
}

func (h CLIHandler) Status(ctx context.Context) (sessiondto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}

func (h CLIHandler) Reset(ctx context.Context) (sessiondto.ResetOutput, error) {
	return h.usecase.Reset(ctx)
}

func (h CLIHandler) LogHours(ctx context.Context, tag string, hours float64) (sessiondto.LogOutput, error) {
	return h.usecase.LogHours(ctx, sessiondto.LogInput{Tag: tag, Hours: hours})
}

func (h CLIHandler) History(ctx context.Context, tag string, limit int) ([]sessiondto.HistoryEntry, error) {
	return h.usecase.History(ctx, sessiondto.HistoryInput{Tag: tag, Limit: limit})
}

func (h CLIHandler) Reindex(ctx context.Context) (int, error) {
	return h.usecase.Reindex(ctx)
}

func (h CLIHandler) LogPath() string {
	return h.usecase.LogPath()
}
