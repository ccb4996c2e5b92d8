package execution

import (
	"context"
	"net/http"

	"apismoke/internal/domain"
)

// Check names, also used for --filter
const (
	RootCheckName   = "Root API Endpoint"
	CreateCheckName = "Create Status Check"
	ListCheckName   = "Get Status Checks"
)

// RootCheck is GET api/
func RootCheck() domain.Check {
	return domain.Check{Name: RootCheckName, Method: http.MethodGet, Endpoint: "api/", ExpectedStatus: http.StatusOK}
}

// CreateCheck is POST api/status. The server answers 200 rather than 201.
func CreateCheck(clientName string) domain.Check {
	return domain.Check{
		Name:           CreateCheckName,
		Method:         http.MethodPost,
		Endpoint:       "api/status",
		ExpectedStatus: http.StatusOK,
		Payload:        map[string]string{"client_name": clientName},
	}
}

// ListCheck is GET api/status
func ListCheck() domain.Check {
	return domain.Check{Name: ListCheckName, Method: http.MethodGet, Endpoint: "api/status", ExpectedStatus: http.StatusOK}
}

// Tester exposes the status-check API checks
type Tester struct {
	runner *Runner
}

// NewTester creates a new Tester
func NewTester(runner *Runner) *Tester {
	return &Tester{runner: runner}
}

// TestRootEndpoint checks the API root
func (t *Tester) TestRootEndpoint(ctx context.Context) bool {
	ok, _ := t.runner.RunTest(ctx, RootCheck())
	return ok
}

// TestCreateStatusCheck creates a status check and returns the id the server assigned.
// ok is false when the call failed or the response carries no string id.
func (t *Tester) TestCreateStatusCheck(ctx context.Context, clientName string) (id string, ok bool) {
	passed, body := t.runner.RunTest(ctx, CreateCheck(clientName))
	if !passed {
		return "", false
	}
	v, found := body.Field("id")
	if !found {
		return "", false
	}
	id, ok = v.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// TestGetStatusChecks lists status checks; the body is returned unchanged
func (t *Tester) TestGetStatusChecks(ctx context.Context) (bool, domain.Body) {
	return t.runner.RunTest(ctx, ListCheck())
}
