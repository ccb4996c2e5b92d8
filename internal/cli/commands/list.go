package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"apismoke/internal/config"
	"apismoke/internal/discovery"
	"apismoke/internal/execution"
	"apismoke/internal/parser"
	"apismoke/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	reporter  *ui.Reporter
	parser    parser.Parser
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	reporter *ui.Reporter,
	p parser.Parser,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		reporter:  reporter,
		parser:    p,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	runner := execution.NewRunner(lc.config, lc.reporter, lc.parser)
	checks := execution.NewSuite(lc.config, runner, lc.reporter, lc.filter).Checks()

	if len(checks) == 0 {
		color.Yellow("No checks found")
		return nil
	}

	lc.formatter.PrintChecks(checks)
	return nil
}
