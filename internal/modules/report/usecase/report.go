package usecase

import (
	"context"

	"worklog/internal/modules/report/domain"
	"worklog/internal/modules/report/dto"
	reportin "worklog/internal/modules/report/port/in"
	"worklog/internal/modules/report/service"
	"worklog/internal/platform/clock"
)

type Interactor struct {
	svc   *service.ReportService
	clock clock.Clock
}

func NewInteractor(svc *service.ReportService, clk clock.Clock) reportin.Usecase {
	return &Interactor{svc: svc, clock: clk}
}

func (i *Interactor) Report(ctx context.Context, input dto.ReportInput) (dto.ReportOutput, error) {
	period, err := domain.ParsePeriod(input.Period)
	if err != nil {
		return dto.ReportOutput{}, err
	}
	lines, err := i.svc.Build(ctx, period)
	if err != nil {
		return dto.ReportOutput{}, err
	}
	out := dto.ReportOutput{
		Period:      string(period),
		GeneratedAt: i.clock.Now(),
		Empty:       len(lines) == 0,
	}
	for _, line := range lines {
		out.Lines = append(out.Lines, dto.ReportLine{Tag: line.Tag, Seconds: line.Seconds, Hours: line.Hours()})
	}
	return out, nil
}
