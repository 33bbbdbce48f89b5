package usecase

import (
	"context"
	"time"

	"worklog/internal/modules/session/domain"
	"worklog/internal/modules/session/dto"
	sessionin "worklog/internal/modules/session/port/in"
	sessionout "worklog/internal/modules/session/port/out"
	"worklog/internal/modules/session/service"
	"worklog/internal/platform/clock"
)

type Interactor struct {
	svc       *service.SessionService
	store     sessionout.LogStore
	projector sessionout.HistoryProjector
	clock     clock.Clock
}

func NewInteractor(svc *service.SessionService, store sessionout.LogStore, projector sessionout.HistoryProjector, clk clock.Clock) sessionin.Usecase {
	return &Interactor{svc: svc, store: store, projector: projector, clock: clk}
}

func (i *Interactor) Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error) {
	sessions, err := i.store.Load(ctx)
	if err != nil {
		return dto.StartOutput{}, err
	}
	sessions, started, err := i.svc.Start(ctx, sessions, input.Tag)
	if err != nil {
		return dto.StartOutput{}, err
	}
	if err := i.store.Save(ctx, sessions); err != nil {
		return dto.StartOutput{}, err
	}
	i.project(ctx, sessions)
	return dto.StartOutput{Tag: started.Tag, StartedAt: time.Unix(started.Start, 0).UTC()}, nil
}

func (i *Interactor) Stop(ctx context.Context) (dto.StopOutput, error) {
	sessions, err := i.store.Load(ctx)
	if err != nil {
		return dto.StopOutput{}, err
	}
	sessions, stopped, err := i.svc.Stop(ctx, sessions)
	if err != nil {
		return dto.StopOutput{}, err
	}
	if err := i.store.Save(ctx, sessions); err != nil {
		return dto.StopOutput{}, err
	}
	i.project(ctx, sessions)
	duration, _ := stopped.Duration()
	return dto.StopOutput{Tag: stopped.Tag, Duration: duration}, nil
}

func (i *Interactor) Status(ctx context.Context) (dto.StatusOutput, error) {
	sessions, err := i.store.Load(ctx)
	if err != nil {
		return dto.StatusOutput{}, err
	}
	active, ok := i.svc.Status(ctx, sessions)
	if !ok {
		return dto.StatusOutput{}, nil
	}
	return dto.StatusOutput{
		Active:    true,
		Tag:       active.Tag,
		StartedAt: time.Unix(active.Start, 0).UTC(),
		Elapsed:   active.Elapsed(i.clock.Now()),
	}, nil
}

func (i *Interactor) Reset(ctx context.Context) (dto.ResetOutput, error) {
	sessions, err := i.store.Load(ctx)
	if err != nil {
		return dto.ResetOutput{}, err
	}
	sessions, removed, err := i.svc.Reset(ctx, sessions)
	if err != nil {
		return dto.ResetOutput{}, err
	}
	if err := i.store.Save(ctx, sessions); err != nil {
		return dto.ResetOutput{}, err
	}
	i.project(ctx, sessions)
	return dto.ResetOutput{Tag: removed.Tag}, nil
}

func (i *Interactor) LogHours(ctx context.Context, input dto.LogInput) (dto.LogOutput, error) {
	sessions, err := i.store.Load(ctx)
	if err != nil {
		return dto.LogOutput{}, err
	}
	sessions, logged, err := i.svc.LogHours(ctx, sessions, input.Tag, input.Hours)
	if err != nil {
		return dto.LogOutput{}, err
	}
	if err := i.store.Save(ctx, sessions); err != nil {
		return dto.LogOutput{}, err
	}
	i.project(ctx, sessions)
	return dto.LogOutput{Tag: logged.Tag, Hours: input.Hours}, nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.SessionOutput, error) {
	sessions, err := i.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SessionOutput, 0, len(sessions))
	for _, s := range sessions {
		item := dto.SessionOutput{Tag: s.Tag, Start: s.Start, Completed: !s.Active()}
		if s.End != nil {
			item.End = *s.End
		}
		out = append(out, item)
	}
	return out, nil
}

func (i *Interactor) History(ctx context.Context, input dto.HistoryInput) ([]dto.HistoryEntry, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 20
	}
	sessions, err := i.projector.Recent(ctx, input.Tag, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HistoryEntry, 0, len(sessions))
	for _, s := range sessions {
		duration, ok := s.Duration()
		if !ok {
			continue
		}
		out = append(out, dto.HistoryEntry{
			Tag:      s.Tag,
			Start:    time.Unix(s.Start, 0).UTC(),
			End:      time.Unix(*s.End, 0).UTC(),
			Duration: duration,
		})
	}
	return out, nil
}

func (i *Interactor) Reindex(ctx context.Context) (int, error) {
	sessions, err := i.store.Load(ctx)
	if err != nil {
		return 0, err
	}
	return i.projector.Rebuild(ctx, sessions)
}

func (i *Interactor) LogPath() string {
	return i.store.Path()
}

// project refreshes the history projection after a successful save.
// The JSON log is already durable at this point, so projection errors
// must not fail the command; reindex recovers a stale projection.
func (i *Interactor) project(ctx context.Context, sessions []domain.Session) {
	if i.projector == nil {
		return
	}
	_, _ = i.projector.Rebuild(ctx, sessions)
}
