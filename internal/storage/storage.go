package storage

import (
	"time"

	"e2enotify/internal/config"
	"e2enotify/internal/domain"
	"e2enotify/internal/report"
)

// Storage persists and loads the last run's summary (e.g. for the failures viewer).
type Storage interface {
	Save(summary report.Summary) error
	Load() (*domain.RunOutput, error)
	// SaveOutput writes the full output (e.g. after resolved-marker updates).
	SaveOutput(output *domain.RunOutput) error
}

// JSONStorage stores the last run in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}

// buildOutput flattens a summary into the persisted shape
func buildOutput(summary report.Summary) *domain.RunOutput {
	stats := summary.Stats
	return &domain.RunOutput{
		Meta: domain.RunMeta{
			Status:      summary.Status,
			Project:     summary.Context.Project,
			Environment: summary.Context.Environment,
			Total:       stats.Total,
			Passed:      stats.Passed,
			Failed:      stats.Failed,
			Skipped:     stats.Skipped,
			Flaky:       stats.Flaky,
			PassRate:    report.PassRate(stats),
			Duration:    report.FormatDuration(stats.DurationMS),
			DurationMS:  stats.DurationMS,
			Timestamp:   time.Now().Format(time.RFC3339),
		},
		Details: summary.Failures,
	}
}
