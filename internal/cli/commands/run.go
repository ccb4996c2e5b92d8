package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"apismoke/internal/config"
	"apismoke/internal/discovery"
	"apismoke/internal/domain"
	"apismoke/internal/execution"
	"apismoke/internal/parser"
	"apismoke/internal/storage"
	"apismoke/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config   *config.Config
	reporter *ui.Reporter
	parser   parser.Parser
	filter   *discovery.Filter
	storage  storage.Storage
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(
	cfg *config.Config,
	reporter *ui.Reporter,
	p parser.Parser,
	filter *discovery.Filter,
	st storage.Storage,
) *RunCommand {
	return &RunCommand{
		config:   cfg,
		reporter: reporter,
		parser:   p,
		filter:   filter,
		storage:  st,
	}
}

// Execute runs the command. It returns execution.ErrChecksFailed when any check failed.
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	runner := execution.NewRunner(rc.config, rc.reporter, rc.parser)
	suite := execution.NewSuite(rc.config, runner, rc.reporter, rc.filter)

	checks := suite.Checks()
	if len(checks) == 0 {
		color.Yellow("No checks to execute")
		return nil
	}
	if rc.config.Flags.Progress {
		suite.SetProgress(ui.NewProgressBar(len(checks)))
	}

	report := suite.Run(cmd.Context())

	if err := rc.save(report); err != nil {
		return err
	}

	if report.Meta.TestsPassed != report.Meta.TestsRun {
		return execution.ErrChecksFailed
	}
	return nil
}

func (rc *RunCommand) save(report *domain.RunReport) error {
	var stores []storage.Storage
	if rc.config.Flags.Save {
		stores = append(stores, rc.storage)
	}
	if rc.config.DBDSN != "" {
		db, err := storage.OpenMySQLStorage(rc.config.DBDSN)
		if err != nil {
			return fmt.Errorf("failed to open run history: %w", err)
		}
		defer db.Close()
		stores = append(stores, db)
	}
	if len(stores) == 0 {
		return nil
	}

	if err := storage.NewMultiStorage(stores...).Save(report); err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	return nil
}
