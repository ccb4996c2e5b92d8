package apitest

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPI_CreateAndList(t *testing.T) {
	api := New()
	srv := api.Start()
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/status", "application/json", strings.NewReader(`{"client_name":"c1"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var created StatusCheck
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "c1", created.ClientName)

	list, err := http.Get(srv.URL + "/api/status")
	require.NoError(t, err)
	defer list.Body.Close()

	var checks []StatusCheck
	require.NoError(t, json.NewDecoder(list.Body).Decode(&checks))
	assert.Len(t, checks, 1)
	assert.Equal(t, 1, api.Requests["POST /api/status"])
}

func TestAPI_RejectsMissingClientName(t *testing.T) {
	srv := New().Start()
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/status", "application/json", strings.NewReader(`{}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestAPI_EmptyListIsArray(t *testing.T) {
	srv := New().Start()
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/status")
	require.NoError(t, err)
	defer resp.Body.Close()

	var raw json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	assert.Equal(t, "[]", string(raw))
}
