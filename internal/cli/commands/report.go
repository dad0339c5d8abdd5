package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"e2enotify/internal/collector"
	"e2enotify/internal/config"
	"e2enotify/internal/domain"
	"e2enotify/internal/events"
	"e2enotify/internal/history"
	"e2enotify/internal/notify"
	"e2enotify/internal/report"
	"e2enotify/internal/storage"
	"e2enotify/internal/ui"
)

// ReportCommand handles the report command
type ReportCommand struct {
	config    *config.Config
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewReportCommand creates a new ReportCommand
func NewReportCommand(cfg *config.Config, st storage.Storage, formatter *ui.Formatter) *ReportCommand {
	return &ReportCommand{
		config:    cfg,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command. The exit code reflects stream and storage
// problems only; notification delivery never fails the run.
func (rc *ReportCommand) Execute(cmd *cobra.Command, args []string) error {
	in, closeIn, err := rc.openInput()
	if err != nil {
		return err
	}
	defer closeIn()

	c := collector.New()
	reader := events.NewReader(c)

	var bar *ui.ProgressBar
	if rc.config.Flags.Progress {
		reader.OnBegin = func(cfg events.BeginConfig) {
			if cfg.TotalTests > 0 {
				bar = ui.NewProgressBar(cfg.TotalTests)
			}
		}
		reader.OnTestEnd = func(domain.TestResult) {
			if bar != nil {
				stats := c.Stats()
				bar.Update(stats.Passed, stats.Failed, stats.Skipped)
			}
		}
	}

	info, err := reader.Read(in)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}
	if info.BadLines > 0 {
		color.Yellow("Skipped %d malformed event line(s)", info.BadLines)
	}

	summary := rc.buildSummary(c, info)
	rc.formatter.PrintSummary(summary)

	if err := rc.storage.Save(summary); err != nil {
		return fmt.Errorf("failed to save run results: %w", err)
	}

	fmt.Println()
	if !rc.config.DiscordConfigured() && !rc.config.TelegramConfigured() {
		color.Yellow("No chat notifiers configured; set DISCORD_WEBHOOK_URL or TELEGRAM_BOT_TOKEN/TELEGRAM_CHAT_ID")
	}
	results := buildDispatcher(rc.config).Dispatch(cmd.Context(), summary)
	rc.recordHistory(cmd, summary, results)

	return nil
}

func (rc *ReportCommand) openInput() (io.Reader, func(), error) {
	if rc.config.Flags.Input == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(rc.config.Flags.Input)
	if err != nil {
		return nil, nil, fmt.Errorf("open event stream: %w", err)
	}
	return f, func() { f.Close() }, nil
}

func (rc *ReportCommand) buildSummary(c *collector.Collector, info events.RunInfo) report.Summary {
	status := info.Status
	if !info.SawEnd {
		// A stream that never reached its end event is an interrupted run
		status = domain.RunInterrupted
	}

	// The begin event supplies run metadata; config (env or flags) wins.
	project := rc.config.Project
	if project == "" {
		project = info.Config.Project
	}
	environment := rc.config.Environment
	if environment == "" {
		environment = info.Config.Environment
	}

	return report.Summary{
		Status:   status,
		Stats:    c.Stats(),
		Failures: c.Failures(),
		Context: domain.RunContext{
			Project:     project,
			Environment: environment,
			RunURL:      rc.config.Flags.RunURL,
		},
	}
}

// recordHistory is best effort: a broken history database never affects the run.
func (rc *ReportCommand) recordHistory(cmd *cobra.Command, summary report.Summary, results []notify.Result) {
	if rc.config.HistoryDSN == "" {
		return
	}
	sink, err := history.Open(rc.config.HistoryDSN)
	if err != nil {
		color.Yellow("History sink unavailable: %v", err)
		return
	}
	defer sink.Close()
	if err := sink.Record(cmd.Context(), summary, results); err != nil {
		color.Yellow("Failed to record notification history: %v", err)
	}
}
