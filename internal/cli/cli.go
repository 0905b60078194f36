// Package cli implements the pyimports command-line interface.
//
// This package provides commands for organizing Python import statements,
// inspecting the package classification registry, and serving the organize
// operation over HTTP. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - organize: Sort, merge, and format Python import statements
//   - registry: Inspect the package classification registry
//   - serve: Expose the organizer as an HTTP API
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pyimports/pkg/buildinfo"
)

// appName is the application name used for config lookup and display.
const appName = "pyimports"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Pyimports sorts, merges, and formats Python import statements",
		Long:         `Pyimports organizes Python import statements the way isort does: grouped into future, standard library, third-party, and local sections, merged per package, and laid out against a configurable line budget.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.organizeCommand())
	root.AddCommand(c.registryCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}
