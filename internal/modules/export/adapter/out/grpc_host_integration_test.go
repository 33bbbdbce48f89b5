package out_test

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	exportout "worklog/internal/modules/export/adapter/out"
	"worklog/internal/modules/export/domain"
	apperrors "worklog/internal/platform/errors"
)

func TestGRPCHostIntegrationCSVExporter(t *testing.T) {
	binPath := buildCSVExporter(t)
	manifest := domain.Manifest{Name: "csv", Binary: binPath, Enabled: true}

	host := exportout.NewGRPCHost()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	metadata, err := host.GetMetadata(ctx, manifest)
	if err != nil {
		t.Fatalf("get metadata: %v", err)
	}
	if metadata.Name != "csv" || metadata.Version == "" {
		t.Fatalf("unexpected metadata: %+v", metadata)
	}

	result, err := host.Export(ctx, manifest, domain.ReportPayload{
		RequestID:   "integration-1",
		Period:      "daily",
		GeneratedAt: time.Now().UTC(),
		Lines: []domain.ReportLine{
			{Tag: "deep-work", Seconds: 5400, Hours: 1.5},
			{Tag: "review", Seconds: 1800, Hours: 0.5},
		},
	})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if result.Records != 2 {
		t.Fatalf("expected 2 records, got %d", result.Records)
	}
	defer os.Remove(result.Destination)

	f, err := os.Open(result.Destination)
	if err != nil {
		t.Fatalf("open exported csv: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read exported csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(rows))
	}
	if rows[1][0] != "deep-work" || rows[1][2] != "1.50" {
		t.Fatalf("unexpected first data row: %v", rows[1])
	}
}

func TestGRPCHostExpiredDeadlineMapsToTimeout(t *testing.T) {
	binPath := buildCSVExporter(t)
	manifest := domain.Manifest{Name: "csv", Binary: binPath, Enabled: true}

	host := exportout.NewGRPCHost()
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	_, err := host.Export(ctx, manifest, domain.ReportPayload{Period: "daily"})
	if !errors.Is(err, apperrors.ErrExporterTimeout) {
		t.Fatalf("expected ErrExporterTimeout, got %v", err)
	}
}

func buildCSVExporter(t *testing.T) string {
	t.Helper()
	binPath := filepath.Join(t.TempDir(), "worklog-exporter-csv")
	cmd := exec.Command("go", "build", "-o", binPath, "./exporters/csv")
	cmd.Dir = repositoryRoot(t)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("build csv exporter: %v\n%s", err, string(out))
	}
	return binPath
}

func repositoryRoot(t *testing.T) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller failed")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "../../../../.."))
}
