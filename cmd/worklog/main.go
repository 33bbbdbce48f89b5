package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"worklog/internal/bootstrap"
	reportdto "worklog/internal/modules/report/dto"
	"worklog/internal/platform/config"
	"worklog/internal/ui/theme"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "worklog",
		Short:         "Personal work-hours tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default: OS user data dir)")

	root.AddCommand(newStartCmd(&dataDir))
	root.AddCommand(newStopCmd(&dataDir))
	root.AddCommand(newStatusCmd(&dataDir))
	root.AddCommand(newResetCmd(&dataDir))
	root.AddCommand(newLogCmd(&dataDir))
	root.AddCommand(newReportCmd(&dataDir))
	root.AddCommand(newPathCmd(&dataDir))
	root.AddCommand(newHistoryCmd(&dataDir))
	root.AddCommand(newReindexCmd(&dataDir))
	root.AddCommand(newExportCmd(&dataDir))
	root.AddCommand(newExporterCmd(&dataDir))
	return root
}

func loadApp(dataDir string) (*bootstrap.App, config.Config, error) {
	cfg, err := config.New(dataDir)
	if err != nil {
		return nil, config.Config{}, err
	}
	app, err := bootstrap.New(cfg)
	if err != nil {
		return nil, config.Config{}, err
	}
	return app, cfg, nil
}

func newStartCmd(dataDir *string) *cobra.Command {
	var noTimer bool
	start := &cobra.Command{
		Use:   "start <tag>",
		Short: "Start tracking a new activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Start(context.Background(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "started %s at %s\n", out.Tag, out.StartedAt.Format(time.RFC3339))
			// The session is already durable; the live display is
			// cosmetic and needs a terminal to render.
			if noTimer || !attachedToTerminal() {
				return nil
			}
			return bootstrap.RunTimer(out.Tag, out.StartedAt)
		},
	}
	start.Flags().BoolVar(&noTimer, "no-timer", false, "skip the live elapsed display")
	return start
}

func newStopCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the running activity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Stop(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "stopped %s after %s\n", out.Tag, formatDuration(out.Duration))
			return nil
		},
	}
}

func newStatusCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the running activity, if any",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Status(context.Background())
			if err != nil {
				return err
			}
			if !out.Active {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no active session")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "currently working on %s (%.2fh)\n", out.Tag, out.Elapsed.Hours())
			return nil
		},
	}
}

func newResetCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Discard the running activity without logging it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.Reset(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "reset session %s\n", out.Tag)
			return nil
		},
	}
}

func newLogCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "log <tag> <hours>",
		Short: "Log hours for a task after the fact",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("hours must be a number: %q", args[1])
			}
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			out, err := app.SessionCLI.LogHours(context.Background(), args[0], hours)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "logged %.2f hours for %s\n", out.Hours, out.Tag)
			return nil
		},
	}
}

func newReportCmd(dataDir *string) *cobra.Command {
	var period string
	report := &cobra.Command{
		Use:   "report",
		Short: "Aggregated totals per tag for a period",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, cfg, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			if period == "" {
				period = cfg.DefaultPeriod
			}
			out, err := app.ReportCLI.Report(context.Background(), period)
			if err != nil {
				return err
			}
			if out.Empty {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "no completed sessions for %s period\n", out.Period)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s report\n%s\n", out.Period, renderReportTable(out.Lines))
			return nil
		},
	}
	report.Flags().StringVar(&period, "period", "", "daily|weekly|monthly (default from config)")
	return report
}

func newPathCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the log file location",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New(*dataDir)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), cfg.LogPath)
			return nil
		},
	}
}

func newHistoryCmd(dataDir *string) *cobra.Command {
	var tag string
	var limit int
	history := &cobra.Command{
		Use:   "history",
		Short: "Recent completed sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			entries, err := app.SessionCLI.History(context.Background(), tag, limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no completed sessions")
				return nil
			}
			for _, e := range entries {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n",
					e.End.Format("2006-01-02 15:04"), e.Tag, formatDuration(e.Duration))
			}
			return nil
		},
	}
	history.Flags().StringVar(&tag, "tag", "", "filter by tag")
	history.Flags().IntVar(&limit, "limit", 20, "maximum entries to show")
	return history
}

func newReindexCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Rebuild the history projection from the JSON log",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			count, err := app.SessionCLI.Reindex(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "reindexed %d sessions\n", count)
			return nil
		},
	}
}

func newExportCmd(dataDir *string) *cobra.Command {
	var exporter, period string
	export := &cobra.Command{
		Use:   "export --exporter <name>",
		Short: "Hand a report to an exporter plugin",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if exporter == "" {
				return fmt.Errorf("--exporter is required")
			}
			app, cfg, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			if period == "" {
				period = cfg.DefaultPeriod
			}
			out, err := app.ExportCLI.Export(context.Background(), exporter, period)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported %d rows (%s) via %s to %s\n",
				out.Records, out.Period, out.Exporter, out.Destination)
			return nil
		},
	}
	export.Flags().StringVar(&exporter, "exporter", "", "exporter name from exporters.yaml")
	export.Flags().StringVar(&period, "period", "", "daily|weekly|monthly (default from config)")
	return export
}

func newExporterCmd(dataDir *string) *cobra.Command {
	exporter := &cobra.Command{Use: "exporter", Short: "Exporter plugin operations"}

	exporter.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List configured exporters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			exporters, err := app.ExportCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(exporters) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no exporters configured")
				return nil
			}
			for _, e := range exporters {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s enabled=%t binary=%s\n", e.Name, e.Enabled, e.Binary)
			}
			return nil
		},
	})

	exporter.AddCommand(&cobra.Command{
		Use:   "doctor",
		Short: "Check exporter binaries and handshakes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := loadApp(*dataDir)
			if err != nil {
				return err
			}
			results, err := app.ExportCLI.Doctor(context.Background())
			if err != nil {
				return err
			}
			if len(results) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no exporters configured")
				return nil
			}
			for _, r := range results {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s binary=%t handshake=%t", r.Name, r.BinaryReachable, r.HandshakeOK)
				if r.Error != "" {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), " error=%q", r.Error)
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	})

	return exporter
}

func renderReportTable(lines []reportdto.ReportLine) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(theme.Muted).
		Headers("TAG", "TOTAL (H)").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.Title
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	for _, line := range lines {
		t.Row(line.Tag, fmt.Sprintf("%.2f", line.Hours))
	}
	return t.Render()
}

func attachedToTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())
}

func formatDuration(d time.Duration) string {
	total := int64(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
