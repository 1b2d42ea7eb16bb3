// Package cli implements the composite command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/matzehuels/composite/pkg/buildinfo"
	"github.com/matzehuels/composite/pkg/pipeline"
	"github.com/matzehuels/composite/pkg/session"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "composite"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configFile overrides the default config location (--config).
	configFile string
	config     *viper.Viper
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		config: newConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Running the root command without a subcommand opens the interactive form.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "composite",
		Short: "Composite computes the centroid of planar figures with holes",
		Long: `Composite computes the area-weighted centroid of a figure built from
rectangles, right triangles and circles, with holes subtracted as
negative area, and renders the figure with its centroid marked.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			registerHooks(c.Logger)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInteractive(cmd.Context(), c.settings())
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configFile, "config", "", "config file (default $XDG_CONFIG_HOME/composite/config.yaml)")

	root.AddCommand(c.interactiveCommand())
	root.AddCommand(c.computeCommand())
	root.AddCommand(c.areaCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner backed by the session's cache.
func (c *CLI) newRunner(sess *session.Session) *pipeline.Runner {
	return pipeline.NewRunner(sess.Cache, sess.Keyer(), c.Logger.With("session", sess.ShortID()))
}
