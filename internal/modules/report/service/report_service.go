package service

import (
	"context"

	"worklog/internal/modules/report/domain"
	reportout "worklog/internal/modules/report/port/out"
	"worklog/internal/platform/clock"
)

type ReportService struct {
	clock  clock.Clock
	source reportout.SessionSource
}

func NewReportService(clk clock.Clock, source reportout.SessionSource) *ReportService {
	return &ReportService{clock: clk, source: source}
}

func (s *ReportService) Build(ctx context.Context, period domain.Period) ([]domain.Line, error) {
	intervals, err := s.source.ListIntervals(ctx)
	if err != nil {
		return nil, err
	}
	return domain.BuildReport(intervals, period, s.clock.Now()), nil
}
