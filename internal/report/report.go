// Package report holds the platform-neutral pieces of run summary formatting.
package report

import (
	"fmt"

	"e2enotify/internal/domain"
)

// Style is the display treatment for a terminal run status
type Style struct {
	Label  string
	Color  int // 24-bit RGB, the encoding Discord embeds use
	Symbol string
}

var styles = map[domain.RunStatus]Style{
	domain.RunPassed:      {Label: "PASSED", Color: 0x2ECC71, Symbol: "✅"},
	domain.RunFailed:      {Label: "FAILED", Color: 0xE74C3C, Symbol: "❌"},
	domain.RunTimedOut:    {Label: "TIMED OUT", Color: 0xE67E22, Symbol: "⏰"},
	domain.RunInterrupted: {Label: "INTERRUPTED", Color: 0x9B59B6, Symbol: "⚠️"},
}

// unknownStyle is used for any status outside the fixed table.
var unknownStyle = Style{Label: "UNKNOWN", Color: 0x95A5A6, Symbol: "❓"}

// StatusStyle maps a run status to its fixed label, color and symbol
func StatusStyle(status domain.RunStatus) Style {
	if s, ok := styles[status]; ok {
		return s
	}
	return unknownStyle
}

// PassRate formats passed/total as a percentage with one decimal place.
// Returns "0%" for an empty run.
func PassRate(stats domain.RunStats) string {
	if stats.Total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%.1f%%", float64(stats.Passed)/float64(stats.Total)*100)
}

// FormatDuration renders milliseconds as "Xm Ys", or "Ys" under a minute
func FormatDuration(ms int64) string {
	seconds := ms / 1000
	minutes := seconds / 60
	if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds%60)
	}
	return fmt.Sprintf("%ds", seconds)
}

// TruncateField enforces a platform field-length cap, marking the cut with
// an ellipsis. The cap is a chat-service constraint, so it varies per target.
func TruncateField(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	if limit <= 3 {
		return s[:limit]
	}
	return s[:limit-3] + "..."
}
