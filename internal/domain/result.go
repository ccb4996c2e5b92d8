package domain

import "time"

// TestResult is the record kept for every executed check
type TestResult struct {
	Name           string        `json:"name"`
	Method         string        `json:"method"`
	URL            string        `json:"url"`
	ExpectedStatus int           `json:"expected_status"`
	StatusCode     int           `json:"status_code,omitempty"` // 0 when no response arrived
	Success        bool          `json:"success"`
	Body           string        `json:"body,omitempty"`  // Truncated raw response body
	Error          string        `json:"error,omitempty"` // Transport fault message
	Duration       time.Duration `json:"duration_ns"`
}

// RunMeta contains metadata about a smoke run
type RunMeta struct {
	RunID           string  `json:"run_id"`
	BaseURL         string  `json:"base_url"`
	ClientName      string  `json:"client_name"`
	TestsRun        int     `json:"tests_run"`
	TestsPassed     int     `json:"tests_passed"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// RunReport is the complete output structure of a run
type RunReport struct {
	Meta    RunMeta      `json:"meta"`
	Details []TestResult `json:"details"`
}

// Failures returns the results of the checks that did not pass
func (r *RunReport) Failures() []TestResult {
	var failed []TestResult
	for _, d := range r.Details {
		if !d.Success {
			failed = append(failed, d)
		}
	}
	return failed
}
