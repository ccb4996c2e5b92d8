package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"apismoke/internal/apitest"
)

func TestRun_ExitCodes(t *testing.T) {
	t.Setenv("SMOKE_BASE_URL", "")

	srv := apitest.New().Start()
	assert.Equal(t, 0, run([]string{"--no-color", "--base-url", srv.URL}))

	url := srv.URL
	srv.Close()
	assert.Equal(t, 1, run([]string{"--no-color", "--base-url", url}))
}

func TestRun_UnknownCommand(t *testing.T) {
	assert.Equal(t, 1, run([]string{"bogus"}))
}
