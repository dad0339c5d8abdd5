package notify

import (
	"context"

	"github.com/fatih/color"

	"e2enotify/internal/report"
)

// Result is one notifier's outcome within a dispatch
type Result struct {
	Notifier string
	Outcome  Outcome
}

// Dispatcher fans a run summary out to every registered notifier.
// Outcomes are independent: one platform failing or being unconfigured
// never affects another, and nothing is retried.
type Dispatcher struct {
	notifiers []Notifier
}

// NewDispatcher creates a Dispatcher over the given notifiers
func NewDispatcher(notifiers ...Notifier) *Dispatcher {
	return &Dispatcher{notifiers: notifiers}
}

// Dispatch sends the summary through each notifier in order and logs every
// outcome to the console.
func (d *Dispatcher) Dispatch(ctx context.Context, summary report.Summary) []Result {
	results := make([]Result, 0, len(d.notifiers))
	for _, n := range d.notifiers {
		outcome := n.Send(ctx, summary)
		logOutcome(n.Name(), outcome)
		results = append(results, Result{Notifier: n.Name(), Outcome: outcome})
	}
	return results
}

// AllSent reports whether every attempted notifier delivered. Skipped
// notifiers do not count against delivery.
func AllSent(results []Result) bool {
	attempted := 0
	for _, r := range results {
		switch r.Outcome.State {
		case StateSent:
			attempted++
		case StateFailed:
			return false
		}
	}
	return attempted > 0
}

func logOutcome(name string, outcome Outcome) {
	switch outcome.State {
	case StateSent:
		color.Green("✓ %s notification sent", name)
	case StateSkipped:
		color.Yellow("- %s notification skipped: %s", name, outcome.Detail)
	case StateFailed:
		color.Red("✗ %s notification failed: %s", name, outcome.Detail)
	}
}
