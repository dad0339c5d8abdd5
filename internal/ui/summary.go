package ui

import (
	"fmt"

	"github.com/fatih/color"

	"e2enotify/internal/domain"
	"e2enotify/internal/report"
)

// Formatter prints run summaries to the terminal
type Formatter struct{}

// NewFormatter creates a new Formatter
func NewFormatter() *Formatter {
	return &Formatter{}
}

// PrintSummary displays the run summary table and, when the run failed, the
// failures grouped by file.
func (f *Formatter) PrintSummary(summary report.Summary) {
	style := report.StatusStyle(summary.Status)
	stats := summary.Stats

	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                       E2E Run Summary                          ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	printRow := func(label string, value string, c *color.Color) {
		fmt.Printf("│ %-31s │ ", label)
		c.Printf("%-27s │\n", value)
	}
	divider := func() {
		fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")
	}

	statusColor := color.New(color.FgWhite)
	switch summary.Status {
	case domain.RunPassed:
		statusColor = color.New(color.FgGreen)
	case domain.RunFailed, domain.RunTimedOut:
		statusColor = color.New(color.FgRed)
	}

	printRow("Status", style.Label, statusColor)
	divider()
	if summary.Context.Project != "" {
		printRow("Project", summary.Context.Project, color.New(color.FgWhite))
		divider()
	}
	if summary.Context.Environment != "" {
		printRow("Environment", summary.Context.Environment, color.New(color.FgWhite))
		divider()
	}
	printRow("Total Tests", fmt.Sprintf("%d", stats.Total), color.New(color.FgWhite))
	divider()
	printRow("Passed", fmt.Sprintf("%d", stats.Passed), color.New(color.FgGreen))
	divider()
	printRow("Failed", fmt.Sprintf("%d", stats.Failed), color.New(color.FgRed))
	divider()
	printRow("Skipped", fmt.Sprintf("%d", stats.Skipped), color.New(color.FgYellow))
	divider()
	printRow("Flaky", fmt.Sprintf("%d", stats.Flaky), color.New(color.FgYellow))
	divider()
	printRow("Pass Rate", report.PassRate(stats), color.New(color.FgWhite))
	divider()
	printRow("Duration", report.FormatDuration(stats.DurationMS), color.New(color.FgWhite))

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if stats.Failed == 0 {
		color.Green("✓ All tests passed!")
		return
	}

	color.Red("✗ %d test(s) failed", stats.Failed)
	fmt.Println()
	f.printFailures(summary.Failures)
}

// printFailures lists failures grouped by file, in recorded order
func (f *Formatter) printFailures(failures []domain.FailureRecord) {
	for _, group := range report.GroupFailures(failures) {
		color.Cyan("  %s", group.File)
		for _, failure := range group.Failures {
			color.Red("    ✗ %s", failure.Title)
			fmt.Printf("      %s\n", failure.Message)
		}
	}
}
