package out

import (
	"context"

	"worklog/internal/modules/export/domain"
	exportout "worklog/internal/modules/export/port/out"
	reportdto "worklog/internal/modules/report/dto"
	reportin "worklog/internal/modules/report/port/in"
)

// ReportSourceAdapter feeds the report engine's output to exporters.
type ReportSourceAdapter struct {
	reports reportin.Usecase
}

func NewReportSourceAdapter(reports reportin.Usecase) exportout.ReportSource {
	return &ReportSourceAdapter{reports: reports}
}

func (a *ReportSourceAdapter) BuildReport(ctx context.Context, period string) (domain.ReportPayload, error) {
	out, err := a.reports.Report(ctx, reportdto.ReportInput{Period: period})
	if err != nil {
		return domain.ReportPayload{}, err
	}
	payload := domain.ReportPayload{Period: out.Period, GeneratedAt: out.GeneratedAt}
	for _, line := range out.Lines {
		payload.Lines = append(payload.Lines, domain.ReportLine{Tag: line.Tag, Seconds: line.Seconds, Hours: line.Hours})
	}
	return payload, nil
}
