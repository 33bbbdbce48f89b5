package out

import (
	"context"

	"worklog/internal/modules/export/domain"
)

// ManifestStore reads configured exporter manifests.
type ManifestStore interface {
	List(ctx context.Context) ([]domain.Manifest, error)
}

// Host launches exporter binaries and speaks the exporter protocol.
type Host interface {
	GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error)
	Export(ctx context.Context, manifest domain.Manifest, payload domain.ReportPayload) (domain.ExportResult, error)
}

// ReportSource provides the aggregated report for a period.
type ReportSource interface {
	BuildReport(ctx context.Context, period string) (domain.ReportPayload, error)
}
