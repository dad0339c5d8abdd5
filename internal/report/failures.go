package report

import (
	"fmt"
	"strings"

	"e2enotify/internal/domain"
)

// DefaultMaxFailedTests is how many individual failed tests a message shows
// unless configured otherwise.
const DefaultMaxFailedTests = 5

// FileGroup is the failures of one source file, in first-seen order
type FileGroup struct {
	File     string
	Failures []domain.FailureRecord
}

// GroupFailures groups failure records by file. File order follows the first
// failure seen in each file, and tests keep their recorded order within a
// file, so the output is stable for a given run.
func GroupFailures(failures []domain.FailureRecord) []FileGroup {
	var groups []FileGroup
	index := make(map[string]int)
	for _, f := range failures {
		i, ok := index[f.File]
		if !ok {
			i = len(groups)
			index[f.File] = i
			groups = append(groups, FileGroup{File: f.File})
		}
		groups[i].Failures = append(groups[i].Failures, f)
	}
	return groups
}

// FailureStyle supplies the platform markup for a rendered failure section.
type FailureStyle struct {
	FileHeader func(name string) string
	TestLine   func(f domain.FailureRecord) string
}

// RenderFailures renders grouped failures as a single text block. At most
// maxTests individual test lines appear across all files combined; when more
// failures exist, a "...and N more" note follows. fieldLimit is the hard
// per-field character cap of the target platform.
func RenderFailures(groups []FileGroup, maxTests, fieldLimit int, style FailureStyle) string {
	if maxTests <= 0 {
		maxTests = DefaultMaxFailedTests
	}

	var b strings.Builder
	shown := 0
	total := 0
	for _, g := range groups {
		total += len(g.Failures)
	}

	for _, g := range groups {
		if shown >= maxTests {
			break
		}
		b.WriteString(style.FileHeader(g.File))
		b.WriteString("\n")
		for _, f := range g.Failures {
			if shown >= maxTests {
				break
			}
			b.WriteString(style.TestLine(f))
			b.WriteString("\n")
			shown++
		}
	}

	if total > shown {
		b.WriteString(fmt.Sprintf("...and %d more", total-shown))
	}

	return TruncateField(strings.TrimRight(b.String(), "\n"), fieldLimit)
}
