// SPDX-License-Identifier: MIT

// Package cli implements the apsp command-line interface.
//
// The CLI loads a dense weight matrix from a JSON, YAML or TOML file, runs
// one of the apsp engines on it and renders distances, predecessors and
// routes. It is built with cobra and logs through charmbracelet/log.
//
// # Commands
//
//   - solve: all-pairs distances and predecessors
//   - path: a single reconstructed route and its cost
//   - compare: Floyd vs Dantzig, raw and corrected
//
// # Configuration
//
// Defaults come from an optional apsp.toml in the working directory (or the
// file named by --config); explicit flags always win.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const appName = "apsp"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the version information displayed by --version.
// main calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	verbose    bool
	cfg        Config
}

// New creates a CLI whose logger writes to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    defaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "apsp computes all-pairs shortest paths on dense weight matrices",
		Long:          `apsp runs the Floyd or Dantzig all-pairs shortest path engine on a dense integer weight matrix, with negative edges allowed and pairs routed through negative cycles reported as -inf.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			c.Logger.Debug("config", "algorithm", cfg.Algorithm, "negative_check", *cfg.NegativeCheck, "format", cfg.Format)
			return nil
		},
	}

	root.SetVersionTemplate(appName + " {{.Version}}\ncommit: " + commit + "\nbuilt: " + date + "\n")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ./"+defaultConfigFile+" if present)")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.pathCommand())
	root.AddCommand(c.compareCommand())

	return root
}
