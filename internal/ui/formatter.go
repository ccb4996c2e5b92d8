package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"apismoke/internal/domain"
)

// Formatter prints stored runs as tables
type Formatter struct {
	out io.Writer
}

// NewFormatter creates a new Formatter
func NewFormatter(out io.Writer) *Formatter {
	return &Formatter{out: out}
}

// PrintChecks lists checks in execution order
func (f *Formatter) PrintChecks(checks []domain.Check) {
	color.New(color.FgCyan).Fprintf(f.out, "%d check(s):\n", len(checks))
	for i, c := range checks {
		fmt.Fprintf(f.out, "  %d. %-22s %-5s %-12s expect %d\n", i+1, c.Name, c.Method, c.Endpoint, c.ExpectedStatus)
	}
}

// PrintRunReport prints the statistics table of a stored run followed by its failures
func (f *Formatter) PrintRunReport(report *domain.RunReport) {
	meta := report.Meta
	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	white := color.New(color.FgWhite)

	fmt.Fprint(f.out, "\n")
	cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(f.out, "║                      Smoke Run Statistics                     ║")
	cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")

	sep := "├─────────────────────────────────┼─────────────────────────────┤"
	row := func(label string, c *color.Color, value any) {
		fmt.Fprintf(f.out, "│ %-31s │ ", label)
		c.Fprintf(f.out, "%-27v", value)
		fmt.Fprintln(f.out, " │")
	}

	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	row("Run ID", white, shorten(meta.RunID, 27))
	fmt.Fprintln(f.out, sep)
	row("Base URL", white, shorten(meta.BaseURL, 27))
	fmt.Fprintln(f.out, sep)
	row("Tests Run", white, meta.TestsRun)
	fmt.Fprintln(f.out, sep)
	row("Tests Passed", green, meta.TestsPassed)
	fmt.Fprintln(f.out, sep)
	row("Tests Failed", red, meta.TestsRun-meta.TestsPassed)
	fmt.Fprintln(f.out, sep)
	row("Duration", white, fmt.Sprintf("%.2fs", meta.DurationSeconds))
	fmt.Fprintln(f.out, sep)
	row("Timestamp", white, meta.Timestamp)
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Fprintln(f.out)
	failures := report.Failures()
	if len(failures) == 0 {
		green.Fprintln(f.out, "✓ All checks passed!")
		return
	}
	red.Fprintf(f.out, "✗ %d check(s) failed\n", len(failures))
	for _, r := range failures {
		fmt.Fprintf(f.out, "  └── %s %s: %s\n", r.Method, r.URL, failureReason(r))
	}
}

// failureReason describes why a stored check failed
func failureReason(r domain.TestResult) string {
	if r.Error != "" {
		return r.Error
	}
	return fmt.Sprintf("expected %d, got %d", r.ExpectedStatus, r.StatusCode)
}

func shorten(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
