package cli

import (
	goerrors "errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/chlog/internal/changelog"
	"github.com/ariel-frischer/chlog/internal/errors"
	"github.com/ariel-frischer/chlog/internal/output"
)

var releaseCmd = &cobra.Command{
	Use:   "release <version>",
	Short: "Move unreleased entries into a new release",
	Long: `Move every unreleased entry into a directory named after the given
version, then recreate an empty unreleased folder.

The version must contain a full semantic version; a leading prefix such as
"v" is kept as the release's display name.`,
	Example: `  chlog release v0.2.0
  chlog release v1.0.0-rc.1`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		version := args[0]
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := changelog.PrepareReleaseDir(cfg, flagPath, version); err != nil {
			var (
				noVersion   *changelog.NoVersionError
				parseErr    *changelog.VersionParseError
				dirExists   *changelog.DirExistsError
				expectedDir *changelog.ExpectedDirError
			)
			switch {
			case goerrors.As(err, &noVersion), goerrors.As(err, &parseErr):
				return errors.InvalidVersion(version)
			case goerrors.As(err, &expectedDir):
				return errors.NoUnreleasedEntries()
			case goerrors.As(err, &dirExists):
				return errors.NewInputError(
					fmt.Sprintf("release %s already exists", version),
					"Pick a different version number",
				)
			default:
				return errors.Wrap(err, errors.Runtime)
			}
		}
		output.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Released %s", version))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(releaseCmd)
}
