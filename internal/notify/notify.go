// Package notify delivers run summaries to external chat services.
package notify

import (
	"context"

	"e2enotify/internal/report"
)

// State classifies what happened to one notification attempt
type State string

const (
	// StateSent means the platform accepted the message.
	StateSent State = "sent"
	// StateSkipped means the notifier was disabled or missing credentials.
	// This is not an error.
	StateSkipped State = "skipped"
	// StateFailed means the POST was attempted and rejected. Delivery
	// failures never propagate past the notify boundary.
	StateFailed State = "failed"
)

// Outcome reports the result of a single Send
type Outcome struct {
	State  State
	Detail string // Skip reason or failure detail (HTTP status, response body)
}

// Notifier sends one run summary to one platform. Send never returns an
// error: a test run's exit code must not depend on notification delivery.
type Notifier interface {
	Name() string
	Send(ctx context.Context, summary report.Summary) Outcome
}

// Options are the per-notifier settings shared by all platforms
type Options struct {
	Enabled              bool
	IncludeFailedTests   bool
	MaxFailedTestsToShow int
}

// DefaultOptions returns the options used when nothing is configured
func DefaultOptions() Options {
	return Options{
		Enabled:              true,
		IncludeFailedTests:   true,
		MaxFailedTestsToShow: report.DefaultMaxFailedTests,
	}
}
