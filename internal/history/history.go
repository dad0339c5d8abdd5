// Package history optionally records dispatched notifications in MySQL so a
// CI fleet can audit what was sent. It is best effort: recording failures
// are logged and swallowed, like delivery failures.
package history

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"

	"e2enotify/internal/notify"
	"e2enotify/internal/report"
)

// Sink writes notification records to the notifications table
type Sink struct {
	db *sql.DB
}

// Open connects to MySQL using the given DSN and makes sure the
// notifications table exists. Returns (nil, nil) when the DSN is empty:
// history is simply not configured then.
func Open(dsn string) (*Sink, error) {
	if dsn == "" {
		return nil, nil
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping history database: %w", err)
	}

	s := &Sink{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database connection
func (s *Sink) Close() error {
	return s.db.Close()
}

func (s *Sink) ensureSchema() error {
	query := `CREATE TABLE IF NOT EXISTS notifications (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		project VARCHAR(255) NOT NULL DEFAULT '',
		environment VARCHAR(255) NOT NULL DEFAULT '',
		run_status VARCHAR(32) NOT NULL,
		total INT NOT NULL,
		passed INT NOT NULL,
		failed INT NOT NULL,
		skipped INT NOT NULL,
		flaky INT NOT NULL,
		pass_rate VARCHAR(16) NOT NULL,
		notifier VARCHAR(64) NOT NULL,
		outcome VARCHAR(16) NOT NULL,
		detail TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("create notifications table: %w", err)
	}
	return nil
}

// Record inserts one row per dispatch outcome
func (s *Sink) Record(ctx context.Context, summary report.Summary, results []notify.Result) error {
	query := `INSERT INTO notifications
		(project, environment, run_status, total, passed, failed, skipped, flaky, pass_rate, notifier, outcome, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	stats := summary.Stats
	for _, r := range results {
		_, err := s.db.ExecContext(ctx, query,
			summary.Context.Project,
			summary.Context.Environment,
			string(summary.Status),
			stats.Total, stats.Passed, stats.Failed, stats.Skipped, stats.Flaky,
			report.PassRate(stats),
			r.Notifier,
			string(r.Outcome.State),
			r.Outcome.Detail,
		)
		if err != nil {
			return fmt.Errorf("insert notification record: %w", err)
		}
	}
	return nil
}
