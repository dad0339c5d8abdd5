package discord

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"e2enotify/internal/domain"
	"e2enotify/internal/notify"
	"e2enotify/internal/report"
)

func testSummary() report.Summary {
	return report.Summary{
		Status: domain.RunFailed,
		Stats:  domain.RunStats{Total: 10, Passed: 7, Failed: 2, Skipped: 1, Flaky: 1, DurationMS: 165000},
		Failures: []domain.FailureRecord{
			{Title: "login works", File: "login.spec.ts", Message: "Expected 200, got 500"},
			{Title: "logout works", File: "login.spec.ts", Message: "Timed out"},
		},
		Context: domain.RunContext{Project: "shop", Environment: "staging"},
	}
}

func TestSend_PostsEmbed(t *testing.T) {
	var (
		gotMethod      string
		gotContentType string
		gotBody        []byte
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	n := NewNotifier(Config{
		WebhookURL: server.URL,
		Options:    notify.DefaultOptions(),
		HTTPClient: server.Client(),
	})

	outcome := n.Send(context.Background(), testSummary())
	if outcome.State != notify.StateSent {
		t.Fatalf("expected sent, got %s (%s)", outcome.State, outcome.Detail)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("expected POST, got %s", gotMethod)
	}
	if gotContentType != "application/json" {
		t.Errorf("expected application/json, got %s", gotContentType)
	}

	var payload webhookPayload
	if err := json.Unmarshal(gotBody, &payload); err != nil {
		t.Fatalf("body is not valid JSON: %v", err)
	}
	if len(payload.Embeds) != 1 {
		t.Fatalf("expected 1 embed, got %d", len(payload.Embeds))
	}

	e := payload.Embeds[0]
	if e.Title != "❌ E2E Tests FAILED" {
		t.Errorf("unexpected title %q", e.Title)
	}
	if e.Color != 0xE74C3C {
		t.Errorf("expected red color, got %#x", e.Color)
	}
	if e.Timestamp == "" {
		t.Errorf("expected a timestamp")
	}

	fields := map[string]string{}
	for _, f := range e.Fields {
		fields[f.Name] = f.Value
	}
	if fields["Project"] != "shop" {
		t.Errorf("expected Project field, got %q", fields["Project"])
	}
	if fields["Duration"] != "2m 45s" {
		t.Errorf("expected Duration '2m 45s', got %q", fields["Duration"])
	}
	if !strings.Contains(fields["Results"], "Pass rate: 70.0%") {
		t.Errorf("expected pass rate in Results, got %q", fields["Results"])
	}
	if !strings.Contains(fields["Failed Tests"], "**login.spec.ts**") {
		t.Errorf("expected grouped failures, got %q", fields["Failed Tests"])
	}
}

func TestSend_OmitsFailuresWhenDisabled(t *testing.T) {
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	opts := notify.DefaultOptions()
	opts.IncludeFailedTests = false
	n := NewNotifier(Config{WebhookURL: server.URL, Options: opts, HTTPClient: server.Client()})

	if outcome := n.Send(context.Background(), testSummary()); outcome.State != notify.StateSent {
		t.Fatalf("expected sent, got %s", outcome.State)
	}
	if strings.Contains(string(gotBody), "Failed Tests") {
		t.Errorf("failures section should be omitted when includeFailedTests is false")
	}
}

func TestSend_SkipsWithoutWebhookURL(t *testing.T) {
	n := NewNotifier(Config{
		Options: notify.DefaultOptions(),
		HTTPClient: &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
			t.Fatal("no network call expected")
			return nil, nil
		})},
	})

	outcome := n.Send(context.Background(), testSummary())
	if outcome.State != notify.StateSkipped {
		t.Errorf("expected skipped, got %s", outcome.State)
	}
}

func TestSend_SkipsWhenDisabled(t *testing.T) {
	n := NewNotifier(Config{WebhookURL: "http://example.invalid", Options: notify.Options{Enabled: false}})
	if outcome := n.Send(context.Background(), testSummary()); outcome.State != notify.StateSkipped {
		t.Errorf("expected skipped, got %s", outcome.State)
	}
}

func TestSend_ReportsNon2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message": "Invalid Webhook Token"}`))
	}))
	defer server.Close()

	n := NewNotifier(Config{WebhookURL: server.URL, Options: notify.DefaultOptions(), HTTPClient: server.Client()})

	outcome := n.Send(context.Background(), testSummary())
	if outcome.State != notify.StateFailed {
		t.Fatalf("expected failed, got %s", outcome.State)
	}
	if !strings.Contains(outcome.Detail, "400") || !strings.Contains(outcome.Detail, "Invalid Webhook Token") {
		t.Errorf("expected status and body in detail, got %q", outcome.Detail)
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }
