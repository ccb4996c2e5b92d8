package cli

import (
	"time"

	"apismoke/internal/config"
)

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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		BaseURL:      f.BaseURL,
		Timeout:      f.Timeout,
		ClientPrefix: f.ClientPrefix,
		NameFilter:   f.NameFilter,
		Progress:     f.Progress,
		Save:         f.Save,
		DBDSN:        f.DBDSN,
		NoColor:      f.NoColor,
	}
}
