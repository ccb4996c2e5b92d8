package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter writes the diagnostic lines of a smoke run
type Reporter struct {
	out    io.Writer
	green  *color.Color
	red    *color.Color
	yellow *color.Color
	cyan   *color.Color
}

// NewReporter creates a Reporter writing to out
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{
		out:    out,
		green:  color.New(color.FgGreen),
		red:    color.New(color.FgRed),
		yellow: color.New(color.FgYellow),
		cyan:   color.New(color.FgCyan),
	}
}

// Start prints the run banner
func (r *Reporter) Start(baseURL string) {
	r.cyan.Fprintln(r.out, "Starting Backend API Tests...")
	fmt.Fprintf(r.out, "Base URL: %s\n", baseURL)
}

// Testing announces a check before its request is sent
func (r *Reporter) Testing(name, url string) {
	fmt.Fprintln(r.out)
	r.cyan.Fprintf(r.out, "Testing %s...\n", name)
	fmt.Fprintf(r.out, "URL: %s\n", url)
}

// Passed prints a matched status and the response content
func (r *Reporter) Passed(status int, response string) {
	r.green.Fprintf(r.out, "✓ Passed - Status: %d\n", status)
	fmt.Fprintf(r.out, "Response: %s\n", response)
}

// Mismatch prints an unexpected status and the truncated body
func (r *Reporter) Mismatch(expected, got int, body string) {
	r.red.Fprintf(r.out, "✗ Failed - Expected %d, got %d\n", expected, got)
	fmt.Fprintf(r.out, "Response: %s...\n", body)
}

// Error prints a transport fault
func (r *Reporter) Error(err error) {
	r.red.Fprintf(r.out, "✗ Failed - Error: %v\n", err)
}

// Warn prints a follow-up line after a failed step
func (r *Reporter) Warn(format string, a ...any) {
	r.red.Fprintf(r.out, "✗ "+format+"\n", a...)
}

// Info prints a follow-up line after a passed step
func (r *Reporter) Info(format string, a ...any) {
	r.green.Fprintf(r.out, "✓ "+format+"\n", a...)
}

// Summary prints the passed/run ratio and the overall verdict
func (r *Reporter) Summary(passed, run int) {
	fmt.Fprintln(r.out)
	r.cyan.Fprintln(r.out, "Backend Tests Summary:")
	fmt.Fprintf(r.out, "Tests passed: %d/%d\n", passed, run)
	if passed == run {
		r.green.Fprintln(r.out, "All backend tests passed!")
	} else {
		r.yellow.Fprintln(r.out, "Some backend tests failed")
	}
}
