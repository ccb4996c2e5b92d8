package execution

import (
	"bytes"
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apismoke/internal/apitest"
	"apismoke/internal/config"
	"apismoke/internal/discovery"
	"apismoke/internal/parser"
	"apismoke/internal/ui"
)

func newTestSuite(baseURL, filter string) (*Suite, *bytes.Buffer) {
	cfg := config.New()
	cfg.BaseURL = baseURL
	cfg.Flags.NameFilter = filter
	var out bytes.Buffer
	reporter := ui.NewReporter(&out)
	runner := NewRunner(cfg, reporter, parser.NewJSONParser())
	suite := NewSuite(cfg, runner, reporter, discovery.NewFilter())
	suite.SetClock(func() time.Time { return time.Date(2026, 10, 18, 10, 15, 0, 0, time.UTC) })
	return suite, &out
}

func TestSuite_Run_AllPassed(t *testing.T) {
	api := apitest.New()
	srv := api.Start()
	defer srv.Close()
	suite, out := newTestSuite(srv.URL, "")

	report := suite.Run(context.Background())

	assert.Equal(t, 3, report.Meta.TestsRun)
	assert.Equal(t, 3, report.Meta.TestsPassed)
	assert.Equal(t, "test_client_101500", report.Meta.ClientName)
	assert.Equal(t, srv.URL, report.Meta.BaseURL)
	_, err := uuid.Parse(report.Meta.RunID)
	assert.NoError(t, err)
	require.Len(t, report.Details, 3)
	assert.Equal(t, []string{RootCheckName, CreateCheckName, ListCheckName},
		[]string{report.Details[0].Name, report.Details[1].Name, report.Details[2].Name})

	assert.Contains(t, out.String(), "Base URL: "+srv.URL)
	assert.Contains(t, out.String(), "Retrieved 1 status checks")
	assert.Contains(t, out.String(), "Tests passed: 3/3")
	assert.Equal(t, "test_client_101500", api.Checks()[0].ClientName)
	assert.Equal(t, "application/json", api.ContentTypes["POST /api/status"])
}

func TestSuite_Run_Unreachable(t *testing.T) {
	suite, out := newTestSuite(unreachableURL(), "")

	report := suite.Run(context.Background())

	assert.Equal(t, 3, report.Meta.TestsRun)
	assert.Equal(t, 0, report.Meta.TestsPassed)
	assert.Len(t, report.Failures(), 3)
	assert.Contains(t, out.String(), "Root endpoint failed")
	assert.Contains(t, out.String(), "Status check creation failed")
	assert.Contains(t, out.String(), "Status check retrieval failed")
	assert.Contains(t, out.String(), "Tests passed: 0/3")
}

func TestSuite_Run_FailureDoesNotStopNextCheck(t *testing.T) {
	api := apitest.New()
	api.RootStatus = http.StatusServiceUnavailable
	srv := api.Start()
	defer srv.Close()
	suite, out := newTestSuite(srv.URL, "")

	report := suite.Run(context.Background())

	assert.Equal(t, 3, report.Meta.TestsRun)
	assert.Equal(t, 2, report.Meta.TestsPassed)
	assert.Equal(t, 1, api.Requests["GET /api/status"])
	assert.Contains(t, out.String(), "Tests passed: 2/3")
}

func TestSuite_Run_UnknownListShape(t *testing.T) {
	srv := respond(http.StatusOK, `{"message":"Hello World"}`)
	defer srv.Close()
	suite, out := newTestSuite(srv.URL, "")

	suite.Run(context.Background())

	assert.Contains(t, out.String(), "Retrieved unknown status checks")
}

func TestSuite_Run_Filtered(t *testing.T) {
	api := apitest.New()
	srv := api.Start()
	defer srv.Close()
	suite, out := newTestSuite(srv.URL, "*Status*")

	report := suite.Run(context.Background())

	assert.Equal(t, 2, report.Meta.TestsRun)
	assert.Zero(t, api.Requests["GET /api/"])
	assert.Contains(t, out.String(), "Tests passed: 2/2")
}

func TestSuite_Checks(t *testing.T) {
	suite, _ := newTestSuite("http://localhost", "")

	checks := suite.Checks()
	require.Len(t, checks, 3)
	assert.Equal(t, map[string]string{"client_name": "test_client_101500"}, checks[1].Payload)
	assert.Equal(t, http.StatusOK, checks[1].ExpectedStatus)
}
