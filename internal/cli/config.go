package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	cerrors "github.com/matzehuels/composite/pkg/errors"
	"github.com/matzehuels/composite/pkg/pipeline"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "COMPOSITE"

	cfgKeyOutput  = "output"
	cfgKeyWidth   = "render.width"
	cfgKeyHeight  = "render.height"
	cfgKeyFormats = "render.formats"
	cfgKeyGrid    = "render.grid"

	// defaultOutput is the base path of rendered files; the format is
	// appended as the extension.
	defaultOutput = "centroid"
)

// configKeys lists every key in display order.
var configKeys = []string{cfgKeyOutput, cfgKeyFormats, cfgKeyWidth, cfgKeyHeight, cfgKeyGrid}

// renderSettings holds the render defaults after config and flags are
// merged.
type renderSettings struct {
	output  string
	formats []string
	width   int
	height  int
	grid    bool
}

// options converts the settings to pipeline options.
func (s renderSettings) options() pipeline.Options {
	return pipeline.Options{
		Formats: s.formats,
		Width:   s.width,
		Height:  s.height,
		NoGrid:  !s.grid,
	}
}

// newConfig creates a viper instance with defaults and COMPOSITE_*
// environment bindings (COMPOSITE_RENDER_WIDTH, COMPOSITE_OUTPUT, ...).
func newConfig() *viper.Viper {
	v := viper.New()
	v.SetDefault(cfgKeyOutput, defaultOutput)
	v.SetDefault(cfgKeyFormats, pipeline.FormatSVG)
	v.SetDefault(cfgKeyWidth, pipeline.DefaultWidth)
	v.SetDefault(cfgKeyHeight, pipeline.DefaultHeight)
	v.SetDefault(cfgKeyGrid, true)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// loadConfig reads the config file. A missing file at the default location
// is not an error; a missing file named by --config is.
func (c *CLI) loadConfig() error {
	v := c.config
	if c.configFile != "" {
		if _, err := os.Stat(c.configFile); errors.Is(err, fs.ErrNotExist) {
			return cerrors.Wrap(cerrors.ErrCodeFileNotFound, err, "config file not found: %s", c.configFile)
		}
		v.SetConfigFile(c.configFile)
	} else {
		dir, err := configDir()
		if err != nil {
			return nil
		}
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	c.Logger.Debug("loaded config", "file", v.ConfigFileUsed())
	return nil
}

// settings returns the render defaults from config and environment.
func (c *CLI) settings() renderSettings {
	v := c.config
	return renderSettings{
		output:  v.GetString(cfgKeyOutput),
		formats: pipeline.ParseFormats(strings.Join(v.GetStringSlice(cfgKeyFormats), ",")),
		width:   v.GetInt(cfgKeyWidth),
		height:  v.GetInt(cfgKeyHeight),
		grid:    v.GetBool(cfgKeyGrid),
	}
}

// configPath returns the config file in use, or the default location when
// none was read.
func (c *CLI) configPath() (string, error) {
	if used := c.config.ConfigFileUsed(); used != "" {
		return used, nil
	}
	if c.configFile != "" {
		return c.configFile, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName+"."+configFileType), nil
}

// configDir returns the config directory using XDG standard (~/.config/composite/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// configCommand creates the config command for inspecting configuration.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
		Long: `Inspect the render defaults.

Values come from the config file, then COMPOSITE_* environment variables
(COMPOSITE_RENDER_WIDTH, COMPOSITE_OUTPUT, ...). Command flags override both.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.configPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective render defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if used := c.config.ConfigFileUsed(); used != "" {
				printInfo("Config: %s", used)
			} else {
				printWarning("No config file; using defaults")
			}
			for _, key := range configKeys {
				printKeyValue(key, fmt.Sprint(c.config.Get(key)))
			}
			return nil
		},
	})

	return cmd
}
