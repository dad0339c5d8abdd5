package domain

// FailureRecord represents a single failed or timed-out test
type FailureRecord struct {
	Title    string `json:"title"`              // Test title
	File     string `json:"file"`               // File name only (last path segment)
	Message  string `json:"message"`            // Error message, pre-truncated
	Resolved bool   `json:"resolved,omitempty"` // Track if the failure is marked as resolved
}
