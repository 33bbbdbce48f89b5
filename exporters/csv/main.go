package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hashicorp/go-plugin"

	exportrpc "worklog/internal/modules/export/adapter/out/rpc"
)

// csv exporter: writes the aggregated report to a CSV file next to the
// working directory and reports the path back to the host.

type server struct{}

func (s *server) GetMetadata(_ context.Context, _ *exportrpc.Empty) (*exportrpc.Metadata, error) {
	return &exportrpc.Metadata{Name: "csv", Version: "1.0.0"}, nil
}

func (s *server) Export(_ context.Context, in *exportrpc.ExportRequest) (*exportrpc.ExportResponse, error) {
	name := fmt.Sprintf("worklog-%s-%s.csv", in.Period, in.RequestID)
	path := filepath.Join(os.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"tag", "seconds", "hours"}); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for _, line := range in.Lines {
		record := []string{
			line.Tag,
			strconv.FormatInt(line.Seconds, 10),
			strconv.FormatFloat(line.Hours, 'f', 2, 64),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return &exportrpc.ExportResponse{Destination: path, Records: int32(len(in.Lines))}, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: exportrpc.HandshakeConfig,
		Plugins:         exportrpc.PluginMap(&server{}),
		GRPCServer:      plugin.DefaultGRPCServer,
	})
}
