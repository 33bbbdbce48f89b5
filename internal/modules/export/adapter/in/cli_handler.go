package in

import (
	"context"

	exportdto "worklog/internal/modules/export/dto"
	exportin "worklog/internal/modules/export/port/in"
)

type CLIHandler struct {
	usecase exportin.Usecase
}

func NewCLIHandler(usecase exportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Export(ctx context.Context, exporter, period string) (exportdto.ExportOutput, error) {
	return h.usecase.Export(ctx, exportdto.ExportInput{Exporter: exporter, Period: period})
}

func (h CLIHandler) List(ctx context.Context) ([]exportdto.ExporterInfo, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Doctor(ctx context.Context) ([]exportdto.DoctorOutput, error) {
	return h.usecase.Doctor(ctx)
}
