// Package cli is the fulfillmentctl command line: it runs an order document
// through a plan against an in-process registry and writes the exports.
package cli

import (
	"log/slog"
	"os"

	"fulfillment/internal/core/application/workflow"

	"github.com/spf13/cobra"
)

// DriverFactory builds a workflow driver exporting into outDir.
type DriverFactory func(outDir string, logger *slog.Logger) *workflow.Driver

// Execute runs the root command and exits with status 1 on failure.
func Execute(factory DriverFactory) {
	if err := NewRootCmd(factory).Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree.
func NewRootCmd(factory DriverFactory) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "fulfillmentctl",
		Short:        "Import, pack, ship and export customer orders",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging on stderr")
	cmd.AddCommand(runCmd(factory, &debug))
	return cmd
}

func newLogger(cmd *cobra.Command, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})).
		With("component", "cli")
}
