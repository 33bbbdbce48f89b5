package in

import (
	"context"

	reportdto "worklog/internal/modules/report/dto"
	reportin "worklog/internal/modules/report/port/in"
)

type CLIHandler struct {
	usecase reportin.Usecase
}

func NewCLIHandler(usecase reportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Report(ctx context.Context, period string) (reportdto.ReportOutput, error) {
	return h.usecase.Report(ctx, reportdto.ReportInput{Period: period})
}
