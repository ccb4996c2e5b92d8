package main

import (
	"errors"
	"fmt"
	"os"

	"apismoke/internal/cli"
	"apismoke/internal/cli/commands"
	"apismoke/internal/config"
	"apismoke/internal/execution"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI and returns the process exit code
func run(args []string) int {
	rootCmd := &cobra.Command{
		Use:           "apismoke",
		Short:         "Smoke test the status-check API",
		Long:          `Run a fixed sequence of HTTP checks against the status-check API (root endpoint, create status check, list status checks) and report how many passed.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	rootCmd.SetArgs(args)

	// Defaults, then .env and environment
	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Populated by command flags
	var flags cli.Flags

	cmds := commands.NewCommands(cfg, os.Stdout)
	cmds.Register(rootCmd, &flags, cfg)

	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, execution.ErrChecksFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}
