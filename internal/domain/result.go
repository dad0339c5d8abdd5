package domain

// TestStatus is the outcome of a single test attempt as reported by the runner.
type TestStatus string

const (
	StatusPassed   TestStatus = "passed"
	StatusFailed   TestStatus = "failed"
	StatusTimedOut TestStatus = "timedOut"
	StatusSkipped  TestStatus = "skipped"
)

// TestError carries the error message attached to a failed test result.
type TestError struct {
	Message string `json:"message"`
}

// TestInfo identifies the test a result belongs to
type TestInfo struct {
	Title string `json:"title"` // Test title as the runner reports it
	File  string `json:"file"`  // Source file path (any separator style)
}

// TestResult represents the result of a single completed test
type TestResult struct {
	Status   TestStatus  `json:"status"`
	Duration int64       `json:"duration"` // Milliseconds
	Retry    int         `json:"retry"`    // Attempt number, 0 for the first try
	Errors   []TestError `json:"errors,omitempty"`
}

// RunStats contains aggregate counters for a test run.
// Total == Passed + Failed + Skipped; Flaky is a subset of Passed.
type RunStats struct {
	Total      int   `json:"total"`
	Passed     int   `json:"passed"`
	Failed     int   `json:"failed"`
	Skipped    int   `json:"skipped"`
	Flaky      int   `json:"flaky"`
	DurationMS int64 `json:"duration_ms"`
}
