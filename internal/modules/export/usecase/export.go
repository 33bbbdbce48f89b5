package usecase

import (
	"context"

	"worklog/internal/modules/export/dto"
	exportin "worklog/internal/modules/export/port/in"
	exportout "worklog/internal/modules/export/port/out"
	"worklog/internal/modules/export/service"
)

type Interactor struct {
	svc     *service.ExportService
	reports exportout.ReportSource
}

func NewInteractor(svc *service.ExportService, reports exportout.ReportSource) exportin.Usecase {
	return &Interactor{svc: svc, reports: reports}
}

func (i *Interactor) Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error) {
	payload, err := i.reports.BuildReport(ctx, input.Period)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	result, err := i.svc.Export(ctx, input.Exporter, payload)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	return dto.ExportOutput{
		Exporter:    input.Exporter,
		Period:      input.Period,
		Destination: result.Destination,
		Records:     result.Records,
	}, nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.ExporterInfo, error) {
	manifests, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ExporterInfo, 0, len(manifests))
	for _, m := range manifests {
		out = append(out, dto.ExporterInfo{Name: m.Name, Binary: m.Binary, Enabled: m.Enabled})
	}
	return out, nil
}

func (i *Interactor) Doctor(ctx context.Context) ([]dto.DoctorOutput, error) {
	results, err := i.svc.Doctor(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DoctorOutput, 0, len(results))
	for _, r := range results {
		out = append(out, dto.DoctorOutput{
			Name:            r.Name,
			BinaryReachable: r.BinaryReachable,
			HandshakeOK:     r.HandshakeOK,
			Error:           r.Error,
		})
	}
	return out, nil
}
