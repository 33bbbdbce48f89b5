package bootstrap

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	exportinadapter "worklog/internal/modules/export/adapter/in"
	exportoutadapter "worklog/internal/modules/export/adapter/out"
	exportservice "worklog/internal/modules/export/service"
	exportusecase "worklog/internal/modules/export/usecase"
	reportinadapter "worklog/internal/modules/report/adapter/in"
	reportoutadapter "worklog/internal/modules/report/adapter/out"
	reportservice "worklog/internal/modules/report/service"
	reportusecase "worklog/internal/modules/report/usecase"
	sessioninadapter "worklog/internal/modules/session/adapter/in"
	sessionoutadapter "worklog/internal/modules/session/adapter/out"
	sessionservice "worklog/internal/modules/session/service"
	sessionusecase "worklog/internal/modules/session/usecase"
	"worklog/internal/platform/clock"
	"worklog/internal/platform/config"
	"worklog/internal/platform/id"
	"worklog/internal/ui/timer"
)

type App struct {
	SessionCLI sessioninadapter.CLIHandler
	ReportCLI  reportinadapter.CLIHandler
	ExportCLI  exportinadapter.CLIHandler
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}

	store := sessionoutadapter.NewFileLogStore(cfg.LogPath)
	projector, err := sessionoutadapter.NewSQLiteHistoryProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new history projector: %w", err)
	}
	sessionUC := sessionusecase.NewInteractor(sessionservice.NewSessionService(clk), store, projector, clk)

	reportUC := reportusecase.NewInteractor(
		reportservice.NewReportService(clk, reportoutadapter.NewSessionSourceAdapter(sessionUC)),
		clk,
	)

	exportUC := exportusecase.NewInteractor(
		exportservice.NewExportService(
			exportoutadapter.NewFileManifestStore(cfg.ExportersPath),
			exportoutadapter.NewGRPCHost(),
			id.UUID{},
		),
		exportoutadapter.NewReportSourceAdapter(reportUC),
	)

	return &App{
		SessionCLI: sessioninadapter.NewCLIHandler(sessionUC),
		ReportCLI:  reportinadapter.NewCLIHandler(reportUC),
		ExportCLI:  exportinadapter.NewCLIHandler(exportUC),
	}, nil
}

// RunTimer shows the live elapsed view for a running session. The
// display mutates nothing; interrupting it leaves the session active.
func RunTimer(tag string, startedAt time.Time) error {
	program := tea.NewProgram(timer.New(tag, startedAt))
	_, err := program.Run()
	return err
}
