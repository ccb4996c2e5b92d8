package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Target settings
	BaseURL      string
	Timeout      time.Duration
	ClientPrefix string

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// DBDSN enables the MySQL run history when set
	DBDSN string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	BaseURL      string
	Timeout      time.Duration
	ClientPrefix string
	NameFilter   string
	Progress     bool
	Save         bool
	DBDSN        string
	NoColor      bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		BaseURL:        DefaultBaseURL,
		Timeout:        DefaultTimeout,
		ClientPrefix:   DefaultClientPrefix,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
	}
}

// Load creates a config from defaults, the optional env file and the environment.
// A missing env file is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	cfg := New()
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", EnvTimeout, v, err)
		}
		cfg.Timeout = d
	}
	if v := os.Getenv(EnvDBDSN); v != "" {
		cfg.DBDSN = v
	}
	return cfg, nil
}

// ApplyFlags copies parsed flags into the config; zero values keep the current setting.
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.BaseURL != "" {
		c.BaseURL = flags.BaseURL
	}
	if flags.Timeout > 0 {
		c.Timeout = flags.Timeout
	}
	if flags.ClientPrefix != "" {
		c.ClientPrefix = flags.ClientPrefix
	}
	if flags.DBDSN != "" {
		c.DBDSN = flags.DBDSN
	}
}

// URL joins an endpoint onto the base URL the same way for every check
func (c *Config) URL(endpoint string) string {
	return strings.TrimSuffix(c.BaseURL, "/") + "/" + strings.TrimPrefix(endpoint, "/")
}

// GetOutputPath returns the absolute path of the JSON results file
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
