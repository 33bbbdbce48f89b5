package out

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"worklog/internal/modules/export/domain"
	exportout "worklog/internal/modules/export/port/out"
)

// FileManifestStore reads exporter manifests from exporters.yaml in
// the data directory. A missing file means no exporters configured.
type FileManifestStore struct {
	path string
}

func NewFileManifestStore(path string) exportout.ManifestStore {
	return &FileManifestStore{path: path}
}

type manifestFile struct {
	Exporters []domain.Manifest `yaml:"exporters"`
}

func (s *FileManifestStore) List(_ context.Context) ([]domain.Manifest, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Manifest{}, nil
		}
		return nil, fmt.Errorf("read exporter manifests: %w", err)
	}
	parsed := manifestFile{}
	if err := yaml.Unmarshal(payload, &parsed); err != nil {
		return nil, fmt.Errorf("decode exporter manifests: %w", err)
	}
	for _, manifest := range parsed.Exporters {
		if err := manifest.Validate(); err != nil {
			return nil, err
		}
	}
	return parsed.Exporters, nil
}
