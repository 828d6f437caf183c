// Package cli implements the crm command line.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/johnwards/crm/internal/config"
	"github.com/johnwards/crm/internal/logging"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
}

// NewRootCommand creates the root command for the crm CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "crm",
		Short: "CRM API server",
		Long: `A small CRM HTTP API over companies, contacts, activities and deals,
backed by SQLite.

Settings come from an optional YAML file (--config or CRM_CONFIG) and
CRM_* environment variables, which take precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to YAML config file (default $CRM_CONFIG)")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))

	return cmd
}

// configPath returns the config file in effect, if any.
func (o *RootOptions) configPath() string {
	if o.ConfigPath != "" {
		return o.ConfigPath
	}
	return os.Getenv("CRM_CONFIG")
}

// setup loads the configuration and installs the process logger as the slog
// default. The returned LevelVar changes the log level in place.
func (o *RootOptions) setup() (config.Config, *slog.LevelVar, error) {
	cfg, err := config.Load(o.configPath())
	if err != nil {
		return config.Config{}, nil, err
	}

	logger, level, err := logging.New(os.Stderr, cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		return config.Config{}, nil, err
	}
	slog.SetDefault(logger)

	return cfg, level, nil
}
