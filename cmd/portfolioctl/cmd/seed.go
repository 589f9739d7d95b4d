package cmd

import (
	"fmt"

	"github.com/rpupo63/portfolio-site/config"
	"github.com/rpupo63/portfolio-site/seed"
	"github.com/spf13/cobra"
)

var (
	seedMode      string
	seedImagesDir string
	seedNoImages  bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample portfolio content",
	Long: `Load the sample portfolio content.

Modes:
  reset   delete all projects, skills, experience and education, then insert
          the sample dataset
  upsert  insert sample records that are not present yet, matched by title,
          name, company+position or institution+degree+field

Project images found in --images-dir are copied into the media store.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if seedMode != "reset" && seedMode != "upsert" {
			cmd.SilenceUsage = false
			return fmt.Errorf("invalid --mode %q, expected reset or upsert", seedMode)
		}

		ctx := cmd.Context()
		db, err := openDatabase()
		if err != nil {
			return err
		}
		defer db.Close()

		if config.GetBool(cfg, "AUTO_MIGRATE", true) {
			if err := db.Migrate(); err != nil {
				return err
			}
		}

		var opts []seed.Option
		if !seedNoImages {
			store, err := openStore(ctx)
			if err != nil {
				return err
			}
			opts = append(opts, seed.WithImages(store, seedImagesDir))
		}
		seeder := seed.New(db, cmd.OutOrStdout(), opts...)

		if seedMode == "reset" {
			_, err = seeder.Reset(ctx, seed.ResetDataset())
		} else {
			_, err = seeder.Upsert(ctx, seed.UpsertDataset())
		}
		return err
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedMode, "mode", "upsert", "seed mode (reset, upsert)")
	seedCmd.Flags().StringVar(&seedImagesDir, "images-dir", "static/images", "directory holding sample project images")
	seedCmd.Flags().BoolVar(&seedNoImages, "no-images", false, "do not copy project images")
}
