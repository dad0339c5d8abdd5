package commands

import (
	"e2enotify/internal/cli"
	"e2enotify/internal/config"
	"e2enotify/internal/notify"
	"e2enotify/internal/notify/discord"
	"e2enotify/internal/notify/telegram"
	"e2enotify/internal/storage"
	"e2enotify/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Report   *ReportCommand
	Notify   *NotifyCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	jsonStorage := storage.NewJSONStorage(cfg)
	formatter := ui.NewFormatter()
	viewer := ui.NewFailureViewer(jsonStorage)

	return &Commands{
		Report:   NewReportCommand(cfg, jsonStorage, formatter),
		Notify:   NewNotifyCommand(cfg),
		Failures: NewFailuresCommand(cfg, jsonStorage, viewer),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	// The config is fully resolved (env + .env + flag overrides) once flags
	// are parsed, so every command loads it in PreRunE.
	load := func(cmd *cobra.Command, args []string) error {
		*cfg = *config.Load(flags.ToConfigFlags())
		return nil
	}

	// Report command
	reportCmd := &cobra.Command{
		Use:     "report",
		Short:   "Summarize a test run and notify chat channels",
		Long:    "Consume the runner's event stream, print a summary, save it, and send Discord/Telegram notifications",
		RunE:    c.Report.Execute,
		PreRunE: load,
	}
	reportCmd.Flags().StringVarP(&flags.Input, "input", "i", "", "Event stream file (defaults to stdin)")
	reportCmd.Flags().StringVar(&flags.Project, "project", "", "Project name shown in notifications")
	reportCmd.Flags().StringVar(&flags.Environment, "environment", "", "Environment shown in notifications (e.g. staging)")
	reportCmd.Flags().StringVar(&flags.RunURL, "run-url", "", "Link to the CI run, included in notifications")
	reportCmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar while consuming the stream")
	reportCmd.Flags().BoolVar(&flags.NoDiscord, "no-discord", false, "Skip the Discord notification")
	reportCmd.Flags().BoolVar(&flags.NoTelegram, "no-telegram", false, "Skip the Telegram notification")
	reportCmd.Flags().IntVar(&flags.MaxFailedTests, "max-failures", 0, "Cap on individual failed tests per message (default 5)")
	reportCmd.Flags().BoolVar(&flags.NoFailedTests, "no-failed-tests", false, "Omit the failed tests section from notifications")
	rootCmd.AddCommand(reportCmd)

	// Notify command
	notifyCmd := &cobra.Command{
		Use:     "notify <task>",
		Short:   "Send an ad-hoc task notification",
		Long:    "Send a one-off notification about a named task, outside any test run",
		Args:    cobra.ExactArgs(1),
		RunE:    c.Notify.Execute,
		PreRunE: load,
	}
	notifyCmd.Flags().StringVar(&flags.Status, "status", "passed", "Task status: passed, failed, timedout or interrupted")
	notifyCmd.Flags().StringVar(&flags.Duration, "duration", "", "Task duration (e.g. 90s, 5m30s)")
	notifyCmd.Flags().StringVar(&flags.Details, "details", "", "Extra details shown in the notification")
	notifyCmd.Flags().StringArrayVar(&flags.Files, "file", nil, "File associated with a failure (repeatable, pairs with --error)")
	notifyCmd.Flags().StringArrayVar(&flags.Errors, "error", nil, "Error message for a failure (repeatable, pairs with --file)")
	notifyCmd.Flags().StringVar(&flags.Project, "project", "", "Project name shown in notifications")
	notifyCmd.Flags().StringVar(&flags.Environment, "environment", "", "Environment shown in notifications")
	notifyCmd.Flags().BoolVar(&flags.NoDiscord, "no-discord", false, "Skip the Discord notification")
	notifyCmd.Flags().BoolVar(&flags.NoTelegram, "no-telegram", false, "Skip the Telegram notification")
	rootCmd.AddCommand(notifyCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:   "failures",
		Short: "View the last run's failures interactively",
		Long:  "Display failures from the last reported run in an interactive viewer",
		RunE:  c.Failures.Execute,
	}
	rootCmd.AddCommand(failuresCmd)
}

// buildDispatcher assembles the notifiers the config enables
func buildDispatcher(cfg *config.Config) *notify.Dispatcher {
	options := notify.Options{
		Enabled:              true,
		IncludeFailedTests:   cfg.IncludeFailedTests,
		MaxFailedTestsToShow: cfg.MaxFailedTestsToShow,
	}

	discordOpts := options
	discordOpts.Enabled = !cfg.Flags.NoDiscord
	telegramOpts := options
	telegramOpts.Enabled = !cfg.Flags.NoTelegram

	return notify.NewDispatcher(
		discord.NewNotifier(discord.Config{
			WebhookURL: cfg.DiscordWebhookURL,
			Options:    discordOpts,
		}),
		telegram.NewNotifier(telegram.Config{
			BotToken: cfg.TelegramBotToken,
			ChatID:   cfg.TelegramChatID,
			Options:  telegramOpts,
		}),
	)
}
