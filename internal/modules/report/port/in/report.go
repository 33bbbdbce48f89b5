package in

import (
	"context"

	"worklog/internal/modules/report/dto"
)

type Usecase interface {
	Report(ctx context.Context, input dto.ReportInput) (dto.ReportOutput, error)
}
