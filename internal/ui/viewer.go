package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"apismoke/internal/domain"
)

// Viewer displays a stored run interactively
type Viewer interface {
	View(report *domain.RunReport) error
}

// FailureViewer browses the failed checks of a run in a TUI
type FailureViewer struct{}

// NewFailureViewer creates a new FailureViewer
func NewFailureViewer() *FailureViewer {
	return &FailureViewer{}
}

// View opens the TUI; it returns immediately when nothing failed
func (fv *FailureViewer) View(report *domain.RunReport) error {
	failures := report.Failures()
	if len(failures) == 0 {
		color.Green("✓ No failed checks in the last run!")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, f := range failures {
		list.AddItem(fmt.Sprintf("[yellow]%d.[white] %s", i+1, f.Name), "", 0, nil)
	}
	list.SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsView, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" Failed Checks (%d of %d) | %s | ↑↓ navigate, → details, ← back, q to exit ",
			len(failures), report.Meta.TestsRun, report.Meta.BaseURL))

	updateDetails := func(index int) {
		if index >= 0 && index < len(failures) {
			detailsView.SetText(formatFailureDetails(failures[index])).ScrollToBeginning()
		}
	}

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails(index)
	})
	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})
	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	updateDetails(0)

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// formatFailureDetails renders a failed check using tview color tags
func formatFailureDetails(r domain.TestResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[red]✗ Check: %s[white]\n\n", tview.Escape(r.Name))
	fmt.Fprintf(&b, "[cyan]Request:[white] %s %s\n", r.Method, tview.Escape(r.URL))
	fmt.Fprintf(&b, "[cyan]Duration:[white] %s\n\n", r.Duration)

	if r.Error != "" {
		fmt.Fprintf(&b, "[yellow]Error:[white]\n%s\n", tview.Escape(r.Error))
		return b.String()
	}

	fmt.Fprintf(&b, "[yellow]Status:[white] expected %d, got %d\n\n", r.ExpectedStatus, r.StatusCode)
	if r.Body != "" {
		fmt.Fprintf(&b, "[yellow]Response:[white]\n%s\n", tview.Escape(r.Body))
	}
	return b.String()
}
