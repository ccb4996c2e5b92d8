package execution

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"apismoke/internal/config"
	"apismoke/internal/domain"
	"apismoke/internal/parser"
	"apismoke/internal/ui"
)

// Runner executes single checks and keeps the session counters
type Runner struct {
	config   *config.Config
	client   *http.Client
	reporter *ui.Reporter
	parser   parser.Parser
	session  domain.Session
	results  []domain.TestResult
}

// NewRunner creates a new Runner; every request is bounded by cfg.Timeout
func NewRunner(cfg *config.Config, reporter *ui.Reporter, p parser.Parser) *Runner {
	return &Runner{
		config:   cfg,
		client:   &http.Client{Timeout: cfg.Timeout},
		reporter: reporter,
		parser:   p,
	}
}

// RunTest sends one check and compares the status code.
// Every call counts towards TestsRun; transport faults are reported, never returned.
// Failed checks return an empty body.
func (r *Runner) RunTest(ctx context.Context, check domain.Check) (bool, domain.Body) {
	url := r.config.URL(check.Endpoint)
	r.reporter.Testing(check.Name, url)

	result := domain.TestResult{
		Name:           check.Name,
		Method:         check.Method,
		URL:            url,
		ExpectedStatus: check.ExpectedStatus,
	}
	start := time.Now()
	finish := func(success bool) {
		result.Success = success
		result.Duration = time.Since(start)
		r.session.Record(success)
		r.results = append(r.results, result)
	}

	status, raw, err := r.do(ctx, check, url)
	if err != nil {
		result.Error = err.Error()
		r.reporter.Error(err)
		finish(false)
		return false, domain.EmptyBody
	}

	result.StatusCode = status
	result.Body = parser.Truncate(string(raw), parser.DisplayLimit)

	if status != check.ExpectedStatus {
		r.reporter.Mismatch(check.ExpectedStatus, status, result.Body)
		finish(false)
		return false, domain.EmptyBody
	}

	body := r.parser.Parse(raw)
	if body.Kind == domain.BodyText {
		r.reporter.Passed(status, result.Body+"...")
	} else {
		r.reporter.Passed(status, body.String())
	}
	finish(true)
	return true, body
}

func (r *Runner) do(ctx context.Context, check domain.Check, url string) (int, []byte, error) {
	if !check.SupportedMethod() {
		return 0, nil, fmt.Errorf("unsupported method %q", check.Method)
	}

	var payload io.Reader
	if check.Method == http.MethodPost {
		data, err := json.Marshal(check.Payload)
		if err != nil {
			return 0, nil, fmt.Errorf("encode payload: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, check.Method, url, payload)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, raw, nil
}

// Session returns a copy of the counters
func (r *Runner) Session() domain.Session {
	return r.session
}

// Results returns the records of every executed check, in order
func (r *Runner) Results() []domain.TestResult {
	return r.results
}
