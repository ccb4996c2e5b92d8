package config

import "time"

const (
	// DefaultBaseURL is the API the smoke checks run against
	DefaultBaseURL = "https://stockscan-wp-theme.preview.emergentagent.com"
	// DefaultTimeout is the per-request timeout
	DefaultTimeout = 10 * time.Second
	// DefaultClientPrefix is prepended to the HHMMSS client name of a run
	DefaultClientPrefix = "test_client_"
	// DefaultOutputJSONFile is the default output JSON file name
	DefaultOutputJSONFile = "smoke-results.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
	// DefaultEnvFile is loaded before reading environment overrides
	DefaultEnvFile = ".env"
)

// Environment variables read by Load
const (
	EnvBaseURL = "SMOKE_BASE_URL"
	EnvTimeout = "SMOKE_TIMEOUT"
	EnvDBDSN   = "SMOKE_DB_DSN"
)
