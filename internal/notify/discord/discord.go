// Package discord posts run summaries to a Discord webhook as rich embeds.
package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"e2enotify/internal/domain"
	"e2enotify/internal/notify"
	"e2enotify/internal/report"
)

// FieldLimit is Discord's hard cap on an embed field value.
const FieldLimit = 1024

// Config holds everything the Discord notifier needs. Credentials come in
// explicitly; nothing here reads the environment.
type Config struct {
	WebhookURL string
	Options    notify.Options
	HTTPClient *http.Client
}

// Notifier sends one embed per run to a Discord webhook
type Notifier struct {
	cfg Config
}

// NewNotifier creates a Discord notifier
func NewNotifier(cfg Config) *Notifier {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Notifier{cfg: cfg}
}

// Name identifies the notifier in logs
func (n *Notifier) Name() string {
	return "Discord"
}

// Send posts the summary to the webhook. It never returns an error; delivery
// problems are reported through the outcome and go no further.
func (n *Notifier) Send(ctx context.Context, summary report.Summary) notify.Outcome {
	if !n.cfg.Options.Enabled {
		return notify.Outcome{State: notify.StateSkipped, Detail: "disabled"}
	}
	if n.cfg.WebhookURL == "" {
		return notify.Outcome{State: notify.StateSkipped, Detail: "webhook URL not configured"}
	}

	payload := webhookPayload{Embeds: []embed{n.buildEmbed(summary)}}
	body, err := json.Marshal(payload)
	if err != nil {
		return notify.Outcome{State: notify.StateFailed, Detail: fmt.Sprintf("marshal payload: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.cfg.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return notify.Outcome{State: notify.StateFailed, Detail: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.cfg.HTTPClient.Do(req)
	if err != nil {
		return notify.Outcome{State: notify.StateFailed, Detail: fmt.Sprintf("post webhook: %v", err)}
	}
	defer resp.Body.Close()

	// Discord answers 204 on success; accept any 2xx.
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return notify.Outcome{
			State:  notify.StateFailed,
			Detail: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, respBody),
		}
	}

	return notify.Outcome{State: notify.StateSent}
}

func (n *Notifier) buildEmbed(summary report.Summary) embed {
	style := report.StatusStyle(summary.Status)
	stats := summary.Stats

	e := embed{
		Title:     summary.Title(),
		Color:     style.Color,
		Footer:    &embedFooter{Text: "e2enotify"},
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if summary.Context.RunURL != "" {
		e.Description = summary.Context.RunURL
	}

	if summary.Context.Project != "" {
		e.Fields = append(e.Fields, embedField{Name: "Project", Value: summary.Context.Project, Inline: true})
	}
	if summary.Context.Environment != "" {
		e.Fields = append(e.Fields, embedField{Name: "Environment", Value: summary.Context.Environment, Inline: true})
	}
	e.Fields = append(e.Fields,
		embedField{Name: "Duration", Value: report.FormatDuration(stats.DurationMS), Inline: true},
		embedField{Name: "Results", Value: resultsValue(stats)},
	)

	if n.cfg.Options.IncludeFailedTests && len(summary.Failures) > 0 {
		e.Fields = append(e.Fields, embedField{
			Name: "Failed Tests",
			Value: report.RenderFailures(
				report.GroupFailures(summary.Failures),
				n.cfg.Options.MaxFailedTestsToShow,
				FieldLimit,
				failureStyle(),
			),
		})
	}

	return e
}

func resultsValue(stats domain.RunStats) string {
	value := fmt.Sprintf("✅ Passed: %d\n❌ Failed: %d\n⏭️ Skipped: %d",
		stats.Passed, stats.Failed, stats.Skipped)
	if stats.Flaky > 0 {
		value += fmt.Sprintf("\n🎲 Flaky: %d", stats.Flaky)
	}
	return value + fmt.Sprintf("\n📊 Pass rate: %s", report.PassRate(stats))
}

func failureStyle() report.FailureStyle {
	return report.FailureStyle{
		FileHeader: func(name string) string {
			return "**" + name + "**"
		},
		TestLine: func(f domain.FailureRecord) string {
			return fmt.Sprintf("• %s — %s", f.Title, f.Message)
		},
	}
}
