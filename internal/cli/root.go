// Package cli implements the chlog command-line interface.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/chlog/internal/errors"
)

var (
	flagPath  string
	flagDebug bool
)

var rootCmd = &cobra.Command{
	Use:   "chlog",
	Short: "Build changelogs from per-change entry files",
	Long: `chlog assembles a changelog from small per-change Markdown files kept in
a directory tree, so that every change lands in its own file and release
notes never conflict in version control.

Entries live under <changelog dir>/unreleased/<section>/ until they are
moved into a versioned release directory by 'chlog release'.`,
	Example: `  # Create the changelog directory
  chlog init

  # Add an unreleased entry for issue 123
  chlog add --section bug-fixes --issue-no 123 --message "Fixed the thing"

  # Render the full changelog to stdout
  chlog build

  # Move unreleased entries into a new release
  chlog release v0.2.0`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging(flagDebug)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagPath, "path", ".changelog", "Path to the changelog directory")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}

// Execute runs the root command and prints structured errors to stderr.
// It returns a non-nil error when the command failed, after printing it.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}
	if cliErr := errors.AsCLIError(err); cliErr != nil {
		errors.PrintError(cliErr)
	} else {
		errors.PrintSimpleError(err, errors.Runtime)
	}
	return err
}

// configureLogging routes slog through stderr at the requested level.
func configureLogging(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
