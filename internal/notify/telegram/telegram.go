// Package telegram posts run summaries via the Telegram bot API.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"e2enotify/internal/domain"
	"e2enotify/internal/notify"
	"e2enotify/internal/report"
)

// DefaultBaseURL is the Telegram bot API endpoint.
const DefaultBaseURL = "https://api.telegram.org"

// TextLimit is Telegram's hard cap on a message body.
const TextLimit = 4096

// Config holds everything the Telegram notifier needs
type Config struct {
	BotToken   string
	ChatID     string
	BaseURL    string // Defaults to DefaultBaseURL; overridable for tests
	Options    notify.Options
	HTTPClient *http.Client
}

// Notifier sends one HTML message per run through the bot API
type Notifier struct {
	cfg Config
}

// NewNotifier creates a Telegram notifier
func NewNotifier(cfg Config) *Notifier {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Notifier{cfg: cfg}
}

// Name identifies the notifier in logs
func (n *Notifier) Name() string {
	return "Telegram"
}

// sendMessageRequest is the sendMessage call body
type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

// apiResponse is the part of Telegram's reply we care about
type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Send posts the summary through sendMessage. It never returns an error.
func (n *Notifier) Send(ctx context.Context, summary report.Summary) notify.Outcome {
	if !n.cfg.Options.Enabled {
		return notify.Outcome{State: notify.StateSkipped, Detail: "disabled"}
	}
	if n.cfg.BotToken == "" || n.cfg.ChatID == "" {
		return notify.Outcome{State: notify.StateSkipped, Detail: "bot token or chat ID not configured"}
	}

	body, err := json.Marshal(sendMessageRequest{
		ChatID:                n.cfg.ChatID,
		Text:                  n.buildText(summary),
		ParseMode:             "HTML",
		DisableWebPagePreview: true,
	})
	if err != nil {
		return notify.Outcome{State: notify.StateFailed, Detail: fmt.Sprintf("marshal payload: %v", err)}
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.cfg.BaseURL, n.cfg.BotToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return notify.Outcome{State: notify.StateFailed, Detail: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.cfg.HTTPClient.Do(req)
	if err != nil {
		return notify.Outcome{State: notify.StateFailed, Detail: fmt.Sprintf("post sendMessage: %v", err)}
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return notify.Outcome{
			State:  notify.StateFailed,
			Detail: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, respBody),
		}
	}

	var api apiResponse
	if err := json.Unmarshal(respBody, &api); err == nil && !api.OK {
		return notify.Outcome{State: notify.StateFailed, Detail: api.Description}
	}

	return notify.Outcome{State: notify.StateSent}
}

func (n *Notifier) buildText(summary report.Summary) string {
	stats := summary.Stats

	var b strings.Builder
	fmt.Fprintf(&b, "<b>%s</b>\n\n", EscapeHTML(summary.Title()))
	if summary.Context.Project != "" {
		fmt.Fprintf(&b, "Project: %s\n", EscapeHTML(summary.Context.Project))
	}
	if summary.Context.Environment != "" {
		fmt.Fprintf(&b, "Environment: %s\n", EscapeHTML(summary.Context.Environment))
	}
	fmt.Fprintf(&b, "Duration: %s\n\n", report.FormatDuration(stats.DurationMS))

	fmt.Fprintf(&b, "✅ Passed: %d\n❌ Failed: %d\n⏭️ Skipped: %d\n", stats.Passed, stats.Failed, stats.Skipped)
	if stats.Flaky > 0 {
		fmt.Fprintf(&b, "🎲 Flaky: %d\n", stats.Flaky)
	}
	fmt.Fprintf(&b, "📊 Pass rate: %s", report.PassRate(stats))

	if n.cfg.Options.IncludeFailedTests && len(summary.Failures) > 0 {
		b.WriteString("\n\n<b>Failed Tests</b>\n")
		b.WriteString(report.RenderFailures(
			report.GroupFailures(summary.Failures),
			n.cfg.Options.MaxFailedTestsToShow,
			0, // the cap applies to the whole message below
			failureStyle(),
		))
	}
	if summary.Context.RunURL != "" {
		fmt.Fprintf(&b, "\n\n%s", EscapeHTML(summary.Context.RunURL))
	}

	return report.TruncateField(b.String(), TextLimit)
}

func failureStyle() report.FailureStyle {
	return report.FailureStyle{
		FileHeader: func(name string) string {
			return "<b>" + EscapeHTML(name) + "</b>"
		},
		TestLine: func(f domain.FailureRecord) string {
			return fmt.Sprintf("• %s — %s", EscapeHTML(f.Title), EscapeHTML(f.Message))
		},
	}
}

// EscapeHTML escapes the three characters Telegram's HTML parse mode
// requires: &, < and >. Full entity escaping is deliberately not done.
func EscapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
