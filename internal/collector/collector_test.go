package collector

import (
	"strings"
	"testing"

	"e2enotify/internal/domain"
)

func TestCollector_Counters(t *testing.T) {
	tests := []struct {
		name     string
		results  []domain.TestResult
		expected domain.RunStats
	}{
		{
			name: "all passed",
			results: []domain.TestResult{
				{Status: domain.StatusPassed, Duration: 100},
				{Status: domain.StatusPassed, Duration: 200},
			},
			expected: domain.RunStats{Total: 2, Passed: 2, DurationMS: 300},
		},
		{
			name: "mixed statuses",
			results: []domain.TestResult{
				{Status: domain.StatusPassed, Duration: 100},
				{Status: domain.StatusFailed, Duration: 50},
				{Status: domain.StatusSkipped},
				{Status: domain.StatusTimedOut, Duration: 30000},
			},
			expected: domain.RunStats{Total: 4, Passed: 1, Failed: 2, Skipped: 1, DurationMS: 30150},
		},
		{
			name: "retry pass counts as flaky",
			results: []domain.TestResult{
				{Status: domain.StatusPassed, Retry: 1, Duration: 100},
				{Status: domain.StatusPassed, Duration: 100},
			},
			expected: domain.RunStats{Total: 2, Passed: 2, Flaky: 1, DurationMS: 200},
		},
		{
			name: "retry fail is not flaky",
			results: []domain.TestResult{
				{Status: domain.StatusFailed, Retry: 2, Duration: 100},
			},
			expected: domain.RunStats{Total: 1, Failed: 1, DurationMS: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			for _, r := range tt.results {
				c.RecordResult(domain.TestInfo{Title: "t", File: "f.spec.ts"}, r)
			}
			if c.Stats() != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, c.Stats())
			}
		})
	}
}

func TestCollector_Invariants(t *testing.T) {
	c := New()
	results := []domain.TestResult{
		{Status: domain.StatusPassed},
		{Status: domain.StatusFailed},
		{Status: domain.StatusTimedOut},
		{Status: domain.StatusSkipped},
		{Status: domain.StatusPassed, Retry: 1},
	}
	for _, r := range results {
		c.RecordResult(domain.TestInfo{Title: "t", File: "a/b.spec.ts"}, r)
	}

	stats := c.Stats()
	if stats.Total != stats.Passed+stats.Failed+stats.Skipped {
		t.Errorf("total %d != passed %d + failed %d + skipped %d",
			stats.Total, stats.Passed, stats.Failed, stats.Skipped)
	}
	if len(c.Failures()) != stats.Failed {
		t.Errorf("expected %d failure records, got %d", stats.Failed, len(c.Failures()))
	}
	if stats.Flaky > stats.Passed {
		t.Errorf("flaky %d exceeds passed %d", stats.Flaky, stats.Passed)
	}
}

func TestCollector_FailureRecords(t *testing.T) {
	t.Run("file name is last path segment", func(t *testing.T) {
		tests := []struct {
			path     string
			expected string
		}{
			{"tests/auth/login.spec.ts", "login.spec.ts"},
			{`tests\auth\login.spec.ts`, "login.spec.ts"},
			{"login.spec.ts", "login.spec.ts"},
			{"", ""},
		}
		for _, tt := range tests {
			c := New()
			c.RecordResult(
				domain.TestInfo{Title: "t", File: tt.path},
				domain.TestResult{Status: domain.StatusFailed},
			)
			if got := c.Failures()[0].File; got != tt.expected {
				t.Errorf("path %q: expected file %q, got %q", tt.path, tt.expected, got)
			}
		}
	})

	t.Run("long message is truncated with ellipsis", func(t *testing.T) {
		c := New()
		long := strings.Repeat("x", 200)
		c.RecordResult(
			domain.TestInfo{Title: "t", File: "f.spec.ts"},
			domain.TestResult{Status: domain.StatusFailed, Errors: []domain.TestError{{Message: long}}},
		)
		got := c.Failures()[0].Message
		if len(got) != maxErrorMessageLen+3 {
			t.Errorf("expected length %d, got %d", maxErrorMessageLen+3, len(got))
		}
		if !strings.HasSuffix(got, "...") {
			t.Errorf("expected trailing ellipsis, got %q", got[len(got)-10:])
		}
	})

	t.Run("short message is untouched", func(t *testing.T) {
		c := New()
		msg := strings.Repeat("x", maxErrorMessageLen)
		c.RecordResult(
			domain.TestInfo{Title: "t", File: "f.spec.ts"},
			domain.TestResult{Status: domain.StatusFailed, Errors: []domain.TestError{{Message: msg}}},
		)
		if got := c.Failures()[0].Message; got != msg {
			t.Errorf("message of exactly %d chars should not be truncated", maxErrorMessageLen)
		}
	})

	t.Run("missing error message defaults", func(t *testing.T) {
		c := New()
		c.RecordResult(
			domain.TestInfo{Title: "t", File: "f.spec.ts"},
			domain.TestResult{Status: domain.StatusTimedOut},
		)
		if got := c.Failures()[0].Message; got != "Unknown error" {
			t.Errorf("expected %q, got %q", "Unknown error", got)
		}
	})
}
