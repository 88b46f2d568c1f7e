// Package cli implements the densflow command-line interface.
//
// The CLI is a thin driver around package flow: it generates or loads
// capacity matrices, calls flow.MaxFlow, and prints values and timings.
//
// # Commands
//
//   - menu:   interactive selection of the four driver modes (default)
//   - demo:   one small random network, matrix and max flow printed
//   - sweep:  benchmark sweeps of increasing vertex count (low/medium/high density)
//   - solve:  max flow and min cut of a network read from a TOML file
//   - render: Graphviz drawing of a solved network
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// turns on per-phase lines from the solver.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "densflow"

// Version is reported by --version; overridden with -ldflags at build time.
var Version = "dev"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI whose logger writes to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Without a subcommand it runs the interactive menu.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "densflow computes maximum flows with Dinic's algorithm",
		Long:         `densflow computes maximum flows in dense capacitated networks using Dinic's blocking-flow algorithm, and benchmarks it on random networks of increasing size.`,
		Version:      Version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMenu(cmd)
		},
	}

	root.AddCommand(c.menuCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.sweepCommand())
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.renderCommand())

	return root
}
