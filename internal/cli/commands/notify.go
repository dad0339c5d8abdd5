package commands

import (
	"errors"
	"fmt"
	"time"

	"e2enotify/internal/config"
	"e2enotify/internal/domain"
	"e2enotify/internal/notify"
	"e2enotify/internal/report"

	"github.com/spf13/cobra"
)

// NotifyCommand handles ad-hoc task notifications
type NotifyCommand struct {
	config *config.Config
}

// NewNotifyCommand creates a new NotifyCommand
func NewNotifyCommand(cfg *config.Config) *NotifyCommand {
	return &NotifyCommand{config: cfg}
}

// Execute sends one notification about the named task. Unlike report, this
// command's exit code does reflect delivery: 0 only when every configured
// notifier accepted the message.
func (nc *NotifyCommand) Execute(cmd *cobra.Command, args []string) error {
	summary, err := nc.buildSummary(args[0], nc.config.Flags)
	if err != nil {
		return err
	}

	results := buildDispatcher(nc.config).Dispatch(cmd.Context(), summary)
	if !notify.AllSent(results) {
		return errors.New("notification delivery failed")
	}
	return nil
}

func (nc *NotifyCommand) buildSummary(task string, flags config.Flags) (report.Summary, error) {
	status, err := parseStatus(flags.Status)
	if err != nil {
		return report.Summary{}, err
	}

	var durationMS int64
	if flags.Duration != "" {
		d, err := time.ParseDuration(flags.Duration)
		if err != nil {
			return report.Summary{}, fmt.Errorf("invalid duration %q: %w", flags.Duration, err)
		}
		durationMS = d.Milliseconds()
	}

	failures := pairFailures(task, flags.Files, flags.Errors)
	stats := domain.RunStats{
		Total:      len(failures),
		Failed:     len(failures),
		DurationMS: durationMS,
	}

	project := nc.config.Project
	if project == "" {
		project = task
	}
	environment := nc.config.Environment
	if flags.Details != "" {
		if environment != "" {
			environment += " — " + flags.Details
		} else {
			environment = flags.Details
		}
	}

	return report.Summary{
		Status:   status,
		Stats:    stats,
		Failures: failures,
		Context: domain.RunContext{
			Project:     project,
			Environment: environment,
			RunURL:      flags.RunURL,
		},
	}, nil
}

// pairFailures zips repeated --file and --error flags into failure records.
// A missing counterpart falls back to the task name or "Unknown error".
func pairFailures(task string, files, errs []string) []domain.FailureRecord {
	n := len(files)
	if len(errs) > n {
		n = len(errs)
	}
	failures := make([]domain.FailureRecord, 0, n)
	for i := 0; i < n; i++ {
		record := domain.FailureRecord{Title: task, Message: "Unknown error"}
		if i < len(files) {
			record.File = files[i]
		}
		if i < len(errs) && errs[i] != "" {
			record.Message = errs[i]
		}
		failures = append(failures, record)
	}
	return failures
}

func parseStatus(s string) (domain.RunStatus, error) {
	switch domain.RunStatus(s) {
	case domain.RunPassed, domain.RunFailed, domain.RunTimedOut, domain.RunInterrupted:
		return domain.RunStatus(s), nil
	default:
		return "", fmt.Errorf("invalid status %q: use passed, failed, timedout or interrupted", s)
	}
}
