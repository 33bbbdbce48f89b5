package domain

import (
	"fmt"
	"strings"
	"time"
)

// Manifest describes one configured exporter binary.
type Manifest struct {
	Name    string `yaml:"name"`
	Binary  string `yaml:"binary"`
	Enabled bool   `yaml:"enabled"`
}

func (m Manifest) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("exporter manifest missing name")
	}
	if strings.TrimSpace(m.Binary) == "" {
		return fmt.Errorf("exporter %q missing binary", m.Name)
	}
	return nil
}

// Metadata is what an exporter reports about itself on handshake.
type Metadata struct {
	Name    string
	Version string
}

// ReportPayload is the aggregated report handed to an exporter.
type ReportPayload struct {
	RequestID   string
	Period      string
	GeneratedAt time.Time
	Lines       []ReportLine
}

type ReportLine struct {
	Tag     string
	Seconds int64
	Hours   float64
}

// ExportResult describes where an exporter delivered the report.
type ExportResult struct {
	Destination string
	Records     int
}

// DoctorResult is one exporter's health check outcome.
type DoctorResult struct {
	Name            string
	BinaryReachable bool
	HandshakeOK     bool
	Error           string
}
