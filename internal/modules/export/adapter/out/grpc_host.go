package out

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"time"

	hclog "github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	exportrpc "worklog/internal/modules/export/adapter/out/rpc"
	"worklog/internal/modules/export/domain"
	exportout "worklog/internal/modules/export/port/out"
	apperrors "worklog/internal/platform/errors"
)

const (
	defaultStartTimeout = 3 * time.Second
	defaultCallTimeout  = 10 * time.Second
)

type GRPCHost struct{}

func NewGRPCHost() exportout.Host {
	return &GRPCHost{}
}

func (h *GRPCHost) GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error) {
	client, closeFn, err := h.connect(manifest)
	if err != nil {
		return domain.Metadata{}, err
	}
	defer closeFn()

	callCtx, cancel := h.callContext(ctx)
	defer cancel()
	meta, err := client.GetMetadata(callCtx)
	if err != nil {
		return domain.Metadata{}, fmt.Errorf("get metadata: %w", err)
	}
	return domain.Metadata{Name: meta.Name, Version: meta.Version}, nil
}

func (h *GRPCHost) Export(ctx context.Context, manifest domain.Manifest, payload domain.ReportPayload) (domain.ExportResult, error) {
	client, closeFn, err := h.connect(manifest)
	if err != nil {
		return domain.ExportResult{}, err
	}
	defer closeFn()

	lines := make([]exportrpc.ReportLine, 0, len(payload.Lines))
	for _, line := range payload.Lines {
		lines = append(lines, exportrpc.ReportLine{Tag: line.Tag, Seconds: line.Seconds, Hours: line.Hours})
	}

	callCtx, cancel := h.callContext(ctx)
	defer cancel()
	response, err := client.Export(callCtx, &exportrpc.ExportRequest{
		RequestID:   payload.RequestID,
		Period:      payload.Period,
		GeneratedAt: payload.GeneratedAt.Format(time.RFC3339),
		Lines:       lines,
	})
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return domain.ExportResult{}, fmt.Errorf("%w: %s", apperrors.ErrExporterTimeout, manifest.Name)
		}
		return domain.ExportResult{}, fmt.Errorf("export: %w", err)
	}
	return domain.ExportResult{Destination: response.Destination, Records: int(response.Records)}, nil
}

func (h *GRPCHost) connect(manifest domain.Manifest) (exportrpc.ExporterClient, func(), error) {
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig:  exportrpc.HandshakeConfig,
		AllowedProtocols: []plugin.Protocol{plugin.ProtocolGRPC},
		Plugins:          exportrpc.PluginMap(nil),
		Cmd:              exec.Command(manifest.Binary),
		Managed:          true,
		StartTimeout:     defaultStartTimeout,
		Logger:           hclog.New(&hclog.LoggerOptions{Output: io.Discard, Level: hclog.NoLevel}),
	})
	closeFn := func() { client.Kill() }

	rpcClient, err := client.Client()
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("start exporter: %w", err)
	}
	raw, err := rpcClient.Dispense(exportrpc.PluginMapKey)
	if err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("dispense exporter: %w", err)
	}
	typed, ok := raw.(exportrpc.ExporterClient)
	if !ok {
		closeFn()
		return nil, nil, fmt.Errorf("exporter rpc client type mismatch")
	}
	return typed, closeFn, nil
}

func (h *GRPCHost) callContext(parent context.Context) (context.Context, context.CancelFunc) {
	if _, ok := parent.Deadline(); ok {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, defaultCallTimeout)
}
