package commands

import (
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"apismoke/internal/cli"
	"apismoke/internal/config"
	"apismoke/internal/discovery"
	"apismoke/internal/parser"
	"apismoke/internal/storage"
	"apismoke/internal/ui"
)

// Commands holds all CLI commands
type Commands struct {
	Run      *RunCommand
	List     *ListCommand
	Report   *ReportCommand
	Failures *FailuresCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config, out io.Writer) *Commands {
	filter := discovery.NewFilter()
	reporter := ui.NewReporter(out)
	formatter := ui.NewFormatter(out)
	jsonParser := parser.NewJSONParser()
	jsonStorage := storage.NewJSONStorage(cfg)
	viewer := ui.NewFailureViewer()

	return &Commands{
		Run:      NewRunCommand(cfg, reporter, jsonParser, filter, jsonStorage),
		List:     NewListCommand(cfg, reporter, jsonParser, filter, formatter),
		Report:   NewReportCommand(cfg, jsonStorage, formatter),
		Failures: NewFailuresCommand(cfg, jsonStorage, viewer),
	}
}

// Register registers all commands with cobra. The root command itself runs the checks.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		cfg.ApplyFlags(flags.ToConfigFlags())
		if flags.NoColor {
			color.NoColor = true
		}
		return nil
	}

	addRunFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVarP(&flags.BaseURL, "base-url", "u", "", "Base URL of the API under test (default "+config.DefaultBaseURL+")")
		cmd.Flags().DurationVar(&flags.Timeout, "timeout", 0, "Per-request timeout (default 10s)")
		cmd.Flags().StringVar(&flags.ClientPrefix, "client-prefix", "", "Prefix of the generated client name (default "+config.DefaultClientPrefix+")")
		cmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Run only checks whose name matches the pattern (supports wildcards, e.g. '*Status*')")
		cmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar on stderr")
		cmd.Flags().BoolVar(&flags.Save, "save", false, "Save the run to "+config.DefaultOutputJSONDir+"/"+config.DefaultOutputJSONFile)
		cmd.Flags().StringVar(&flags.DBDSN, "db-dsn", "", "MySQL DSN; when set the run is also stored in the run history")
		cmd.Flags().BoolVar(&flags.NoColor, "no-color", false, "Disable colored output")
	}

	rootCmd.RunE = c.Run.Execute
	rootCmd.PreRunE = applyFlags
	addRunFlags(rootCmd)

	// Run command
	runCmd := &cobra.Command{
		Use:     "run",
		Short:   "Run the API smoke checks",
		Long:    "Check the root endpoint, create a status check and list status checks, in that order",
		RunE:    c.Run.Execute,
		PreRunE: applyFlags,
	}
	addRunFlags(runCmd)
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "List the smoke checks",
		Long:    "List the checks that would run, in execution order, without sending requests",
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter checks by name pattern")
	rootCmd.AddCommand(listCmd)

	// Report command
	reportCmd := &cobra.Command{
		Use:     "report",
		Short:   "Show the last saved run",
		Long:    "Print the statistics of the last run saved with --save (or the MySQL history with --db-dsn)",
		RunE:    c.Report.Execute,
		PreRunE: applyFlags,
	}
	reportCmd.Flags().StringVar(&flags.DBDSN, "db-dsn", "", "Read the last run from MySQL instead of the JSON file")
	rootCmd.AddCommand(reportCmd)

	// Failures command
	failuresCmd := &cobra.Command{
		Use:     "failures",
		Short:   "View failed checks interactively",
		Long:    "Display the failed checks of the last saved run in an interactive viewer",
		RunE:    c.Failures.Execute,
		PreRunE: applyFlags,
	}
	failuresCmd.Flags().StringVar(&flags.DBDSN, "db-dsn", "", "Read the last run from MySQL instead of the JSON file")
	rootCmd.AddCommand(failuresCmd)
}

// openStore returns the MySQL history when a DSN is configured, the JSON file otherwise.
// The returned func closes the connection.
func openStore(cfg *config.Config, fallback storage.Storage) (storage.Storage, func(), error) {
	if cfg.DBDSN == "" {
		return fallback, func() {}, nil
	}
	db, err := storage.OpenMySQLStorage(cfg.DBDSN)
	if err != nil {
		return nil, nil, err
	}
	return db, func() { db.Close() }, nil
}
