// Package events decodes the JSON-lines event stream the test runner emits.
package events

import (
	"encoding/json"

	"e2enotify/internal/domain"
)

// Event kinds matching the runner's reporter callbacks.
const (
	KindBegin   = "begin"
	KindTestEnd = "testEnd"
	KindEnd     = "end"
)

// BeginConfig is the payload of the begin event
type BeginConfig struct {
	Project     string `json:"project"`
	Environment string `json:"environment"`
	TotalTests  int    `json:"totalTests"`
}

// EndResult is the payload of the end event
type EndResult struct {
	Status domain.RunStatus `json:"status"`
}

// Event is one line of the runner's stream. Only the fields matching the
// event kind are populated.
type Event struct {
	Kind   string           `json:"event"`
	Config *BeginConfig     `json:"config,omitempty"`
	Test   *domain.TestInfo `json:"test,omitempty"`
	Result json.RawMessage  `json:"result,omitempty"`
}

// TestResult decodes the result payload of a testEnd event
func (e *Event) TestResult() (domain.TestResult, error) {
	var r domain.TestResult
	err := json.Unmarshal(e.Result, &r)
	return r, err
}

// RunResult decodes the result payload of an end event
func (e *Event) RunResult() (EndResult, error) {
	var r EndResult
	err := json.Unmarshal(e.Result, &r)
	return r, err
}
