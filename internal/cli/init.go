package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/chlog/internal/changelog"
	"github.com/ariel-frischer/chlog/internal/config"
	"github.com/ariel-frischer/chlog/internal/errors"
	"github.com/ariel-frischer/chlog/internal/output"
)

var (
	initPrologue string
	initEpilogue string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an empty changelog directory",
	Long: `Create the changelog directory with everything needed to get started.

This command:
  1. Creates the changelog directory and an empty unreleased/ folder
  2. Writes a commented config.toml with every option and its default
  3. Optionally copies prologue and epilogue files into place

Existing files are never overwritten.`,
	Example: `  chlog init
  chlog init --prologue docs/changelog-intro.md`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			// No directory yet; initialize from defaults.
			cfg = changelog.DefaultConfig()
		}
		if err := changelog.InitDir(cfg, flagPath, initPrologue, initEpilogue); err != nil {
			return errors.WrapWithMessage(err, errors.Runtime, "initializing changelog directory")
		}
		if err := config.SaveTemplate(flagPath); err != nil {
			return errors.WrapWithMessage(err, errors.Runtime, "writing default config")
		}
		output.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Initialized changelog directory at %s", flagPath))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&initPrologue, "prologue", "", "Copy this file in as the changelog prologue")
	initCmd.Flags().StringVar(&initEpilogue, "epilogue", "", "Copy this file in as the changelog epilogue")
}
