// Package cmd contains the portfolioctl commands.
package cmd

import (
	"context"

	"github.com/rpupo63/portfolio-site/config"
	"github.com/rpupo63/portfolio-site/database"
	"github.com/rpupo63/portfolio-site/media"
	"github.com/spf13/cobra"
)

// cfg is filled from .env, the environment and SSM before any command runs.
var cfg map[string]string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "portfolioctl",
	Short: "Operator tools for the portfolio site",
	Long: `portfolioctl seeds sample content, migrates the schema and manages
site images. It reads the same configuration as the web server
(.env, environment, optional AWS SSM parameters).

Examples:
  # Replace all content with the sample dataset
  portfolioctl seed --mode reset

  # Add missing sample records, keeping existing ones
  portfolioctl seed --mode upsert

  # Generate placeholder images
  portfolioctl images placeholders`,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Arguments are valid by now; runtime failures should not print usage
		cmd.SilenceUsage = true

		if cfg != nil {
			return nil
		}
		c, err := config.Load(cmd.Context())
		if err != nil {
			return err
		}
		config.SetupLogging(c)
		cfg = c
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Show help by default
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.AddCommand(seedCmd, migrateCmd, imagesCmd)
}

// openDatabase connects with the configured DB_TYPE.
func openDatabase() (database.Database, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return database.Database{}, err
	}
	return database.New(db), nil
}

func openStore(ctx context.Context) (media.Store, error) {
	return media.NewStoreFromConfig(ctx, cfg)
}
