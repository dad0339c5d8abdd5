package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"e2enotify/internal/domain"
	"e2enotify/internal/storage"
)

// FailureViewer displays the last run's failures in an interactive TUI
type FailureViewer struct {
	storage storage.Storage
}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer(st storage.Storage) *FailureViewer {
	return &FailureViewer{storage: st}
}

// View displays the failures of a saved run. Resolved markers toggled with
// 'r' are written back through the storage layer.
func (fv *FailureViewer) View(output *domain.RunOutput) error {
	if len(output.Details) == 0 {
		color.Green("✓ No failures in the last run!")
		return nil
	}

	resolved := make(map[int]bool)
	for i, failure := range output.Details {
		if failure.Resolved {
			resolved[i] = true
		}
	}

	saveResolved := func() error {
		for i := range output.Details {
			output.Details[i].Resolved = resolved[i]
		}
		return fv.storage.SaveOutput(output)
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	listItemText := func(index int) string {
		failure := output.Details[index]
		title := failure.Title
		if title == "" {
			title = fmt.Sprintf("Failure %d", index+1)
		}
		if resolved[index] {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, title)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, title)
	}

	for i := range output.Details {
		list.AddItem(listItemText(i), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	countUnresolved := func() int {
		count := 0
		for i := range output.Details {
			if !resolved[i] {
				count++
			}
		}
		return count
	}

	updateHeader := func() {
		headerView.SetText(fmt.Sprintf(
			" %s run — %d failure(s), %d unresolved | ↑↓ navigate, [yellow]R[white] toggle resolved, Ctrl+C exit ",
			strings.ToUpper(string(output.Meta.Status)), len(output.Details), countUnresolved(),
		))
	}
	updateHeader()

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(output.Details) {
			detailsView.SetText(formatFailure(output.Details[index], index+1))
		}
	}
	updateDetails()

	list.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		updateDetails()
	})

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(output.Details) {
					resolved[index] = !resolved[index]
					list.SetItemText(index, listItemText(index), "")
					updateHeader()
					updateDetails()
					if err := saveResolved(); err != nil {
						_ = err
					}
				}
				return nil
			}
		}
		return event
	})

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsView, 0, 2, false)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(layout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// formatFailure renders one failure for the details pane using tview color tags
func formatFailure(failure domain.FailureRecord, number int) string {
	var b strings.Builder

	title := failure.Title
	if title == "" {
		title = fmt.Sprintf("Failure %d", number)
	}
	fmt.Fprintf(&b, "[red]✗ %s[white]\n\n", title)
	fmt.Fprintf(&b, "[cyan]File:[white] %s\n\n", failure.File)
	fmt.Fprintf(&b, "[yellow]Message:[white]\n%s\n", failure.Message)
	if failure.Resolved {
		fmt.Fprintf(&b, "\n[gray]Marked resolved[white]\n")
	}

	return b.String()
}
