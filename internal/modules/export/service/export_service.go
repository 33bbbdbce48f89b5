package service

import (
	"context"
	"fmt"
	"os/exec"

	"worklog/internal/modules/export/domain"
	exportout "worklog/internal/modules/export/port/out"
	apperrors "worklog/internal/platform/errors"
	"worklog/internal/platform/id"
)

type ExportService struct {
	manifests exportout.ManifestStore
	host      exportout.Host
	idGen     id.Generator
}

func NewExportService(manifests exportout.ManifestStore, host exportout.Host, idGen id.Generator) *ExportService {
	return &ExportService{manifests: manifests, host: host, idGen: idGen}
}

func (s *ExportService) List(ctx context.Context) ([]domain.Manifest, error) {
	return s.manifests.List(ctx)
}

func (s *ExportService) Export(ctx context.Context, name string, payload domain.ReportPayload) (domain.ExportResult, error) {
	manifest, err := s.find(ctx, name)
	if err != nil {
		return domain.ExportResult{}, err
	}
	if !manifest.Enabled {
		return domain.ExportResult{}, fmt.Errorf("exporter %q is disabled", name)
	}
	payload.RequestID = s.idGen.New()
	return s.host.Export(ctx, manifest, payload)
}

// Doctor checks every configured exporter: binary on disk, then a
// metadata handshake over the plugin protocol.
func (s *ExportService) Doctor(ctx context.Context) ([]domain.DoctorResult, error) {
	manifests, err := s.manifests.List(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]domain.DoctorResult, 0, len(manifests))
	for _, manifest := range manifests {
		result := domain.DoctorResult{Name: manifest.Name}
		if _, err := exec.LookPath(manifest.Binary); err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}
		result.BinaryReachable = true
		if _, err := s.host.GetMetadata(ctx, manifest); err != nil {
			result.Error = err.Error()
		} else {
			result.HandshakeOK = true
		}
		results = append(results, result)
	}
	return results, nil
}

func (s *ExportService) find(ctx context.Context, name string) (domain.Manifest, error) {
	manifests, err := s.manifests.List(ctx)
	if err != nil {
		return domain.Manifest{}, err
	}
	for _, manifest := range manifests {
		if manifest.Name == name {
			return manifest, nil
		}
	}
	return domain.Manifest{}, fmt.Errorf("%w: %s", apperrors.ErrExporterNotFound, name)
}
