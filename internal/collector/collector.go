// Package collector accumulates per-test outcomes into run-level aggregates.
package collector

import (
	"strings"

	"e2enotify/internal/domain"
)

// maxErrorMessageLen is the longest error message kept on a failure record.
const maxErrorMessageLen = 150

// unknownError is recorded when a failed result carries no error message.
const unknownError = "Unknown error"

// Collector aggregates test results as the runner reports them.
// The runner serializes calls into RecordResult, so the collector holds no lock.
type Collector struct {
	stats    domain.RunStats
	failures []domain.FailureRecord
}

// New creates an empty Collector
func New() *Collector {
	return &Collector{}
}

// RecordResult records one completed test. It must be called once per test,
// in the order the runner emits results.
func (c *Collector) RecordResult(test domain.TestInfo, result domain.TestResult) {
	c.stats.Total++
	c.stats.DurationMS += result.Duration

	switch result.Status {
	case domain.StatusPassed:
		c.stats.Passed++
		// A pass on a retry means the test is flaky
		if result.Retry > 0 {
			c.stats.Flaky++
		}
	case domain.StatusFailed, domain.StatusTimedOut:
		c.stats.Failed++
		c.failures = append(c.failures, domain.FailureRecord{
			Title:   test.Title,
			File:    fileName(test.File),
			Message: truncateMessage(errorMessage(result)),
		})
	case domain.StatusSkipped:
		c.stats.Skipped++
	}
}

// Stats returns the aggregate counters recorded so far
func (c *Collector) Stats() domain.RunStats {
	return c.stats
}

// Failures returns the failure records in the order they were recorded
func (c *Collector) Failures() []domain.FailureRecord {
	return c.failures
}

func errorMessage(result domain.TestResult) string {
	if len(result.Errors) == 0 || result.Errors[0].Message == "" {
		return unknownError
	}
	return result.Errors[0].Message
}

func truncateMessage(msg string) string {
	if len(msg) <= maxErrorMessageLen {
		return msg
	}
	return msg[:maxErrorMessageLen] + "..."
}

// fileName extracts the last path segment, accepting both separator styles.
func fileName(path string) string {
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		return path[i+1:]
	}
	return path
}
