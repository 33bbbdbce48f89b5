package in

import (
	"context"

	"worklog/internal/modules/export/dto"
)

type Usecase interface {
	Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
	List(ctx context.Context) ([]dto.ExporterInfo, error)
	Doctor(ctx context.Context) ([]dto.DoctorOutput, error)
}
