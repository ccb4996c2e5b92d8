package commands

import (
	"github.com/spf13/cobra"

	"apismoke/internal/config"
	"apismoke/internal/storage"
	"apismoke/internal/ui"
)

// ReportCommand handles the report command
type ReportCommand struct {
	config    *config.Config
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewReportCommand creates a new ReportCommand
func NewReportCommand(cfg *config.Config, st storage.Storage, formatter *ui.Formatter) *ReportCommand {
	return &ReportCommand{
		config:    cfg,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *ReportCommand) Execute(cmd *cobra.Command, args []string) error {
	st, closeStore, err := openStore(rc.config, rc.storage)
	if err != nil {
		return err
	}
	defer closeStore()

	report, err := st.Load()
	if err != nil {
		return err
	}

	rc.formatter.PrintRunReport(report)
	return nil
}
