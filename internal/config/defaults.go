package config

import "time"

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "last-run.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
	// DefaultMaxFailedTestsToShow caps individual failed-test lines per message
	DefaultMaxFailedTestsToShow = 5
	// DefaultHTTPTimeout bounds each outbound webhook POST
	DefaultHTTPTimeout = 15 * time.Second
)
