package cli

import "e2enotify/internal/config"

// Flags holds command-line flags
type Flags struct {
	Project        string
	Environment    string
	RunURL         string
	Input          string
	Progress       bool
	NoDiscord      bool
	NoTelegram     bool
	NoFailedTests  bool
	MaxFailedTests int

	// notify command only
	Status   string
	Duration string
	Details  string
	Files    []string
	Errors   []string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Project:        f.Project,
		Environment:    f.Environment,
		RunURL:         f.RunURL,
		Input:          f.Input,
		Progress:       f.Progress,
		NoDiscord:      f.NoDiscord,
		NoTelegram:     f.NoTelegram,
		NoFailedTests:  f.NoFailedTests,
		MaxFailedTests: f.MaxFailedTests,
		Status:         f.Status,
		Duration:       f.Duration,
		Details:        f.Details,
		Files:          f.Files,
		Errors:         f.Errors,
	}
}
