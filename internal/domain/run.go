package domain

// RunStatus is the terminal status of an entire test run
type RunStatus string

const (
	RunPassed      RunStatus = "passed"
	RunFailed      RunStatus = "failed"
	RunTimedOut    RunStatus = "timedout"
	RunInterrupted RunStatus = "interrupted"
)

// RunContext holds display metadata about where a run happened
type RunContext struct {
	Project     string `json:"project"`
	Environment string `json:"environment"`
	RunURL      string `json:"run_url,omitempty"`
}

// RunMeta contains metadata about a completed run, as persisted to disk
type RunMeta struct {
	Status      RunStatus `json:"status"`
	Project     string    `json:"project"`
	Environment string    `json:"environment"`
	Total       int       `json:"total"`
	Passed      int       `json:"passed"`
	Failed      int       `json:"failed"`
	Skipped     int       `json:"skipped"`
	Flaky       int       `json:"flaky"`
	PassRate    string    `json:"pass_rate"`
	Duration    string    `json:"duration"`
	DurationMS  int64     `json:"duration_ms"`
	Timestamp   string    `json:"timestamp"`
}

// RunOutput is the complete persisted output of a run
type RunOutput struct {
	Meta    RunMeta         `json:"meta"`
	Details []FailureRecord `json:"details"`
}
