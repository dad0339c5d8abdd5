package report

import "e2enotify/internal/domain"

// Summary is everything a notifier needs to describe a finished run
type Summary struct {
	Status   domain.RunStatus
	Stats    domain.RunStats
	Failures []domain.FailureRecord
	Context  domain.RunContext
}

// Title builds the headline shared by all platforms, e.g. "✅ E2E Tests PASSED".
func (s Summary) Title() string {
	style := StatusStyle(s.Status)
	return style.Symbol + " E2E Tests " + style.Label
}
