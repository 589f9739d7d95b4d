package cmd

import (
	"github.com/rpupo63/portfolio-site/media"
	"github.com/spf13/cobra"
)

// imagesCmd runs the interactive menu when no subcommand is given.
var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "List, replace or generate site images",
	Long: `List, replace or generate site images.

Without a subcommand an interactive menu is shown.

Examples:
  portfolioctl images list
  portfolioctl images interactive
  portfolioctl images replace profile.jpg ~/Pictures/me.jpg
  portfolioctl images placeholders`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

var imagesInteractiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Pick images to list or replace from a menu",
	Args:  cobra.NoArgs,
	RunE:  runInteractive,
}

func runInteractive(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd.Context())
	if err != nil {
		return err
	}
	return media.Interactive(cmd.Context(), store, cmd.InOrStdin(), cmd.OutOrStdout())
}

var imagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List current images with sizes and descriptions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		return media.List(cmd.Context(), store, cmd.OutOrStdout())
	},
}

var imagesReplaceCmd = &cobra.Command{
	Use:   "replace <old_image_name> <new_image_path>",
	Short: "Replace an image, keeping a backup of the old one",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		return media.Replace(cmd.Context(), store, args[0], args[1], cmd.OutOrStdout())
	},
}

var imagesPlaceholdersCmd = &cobra.Command{
	Use:   "placeholders",
	Short: "Generate labelled placeholder images",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		return media.GeneratePlaceholders(cmd.Context(), store, cmd.OutOrStdout())
	},
}

func init() {
	imagesCmd.AddCommand(imagesListCmd, imagesReplaceCmd, imagesPlaceholdersCmd, imagesInteractiveCmd)
}
