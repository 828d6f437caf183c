package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johnwards/crm/internal/database"
	"github.com/johnwards/crm/internal/seed"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo dataset into an empty database",
		Long: `Load demo companies, contacts, activities and deals. Nothing is written
if any company already exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := rootOpts.setup()
			if err != nil {
				return err
			}

			db, err := database.Open(cfg.DB.Driver, cfg.DB.Path)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer func() { _ = db.Close() }()

			if cfg.AutoMigrate {
				if err := database.Migrate(cmd.Context(), db); err != nil {
					return fmt.Errorf("run migrations: %w", err)
				}
			}

			if err := seed.Seed(cmd.Context(), db); err != nil {
				return fmt.Errorf("seed data: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "seed complete")
			return nil
		},
	}
}
