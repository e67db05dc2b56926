package cli

import (
	goerrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/chlog/internal/changelog"
	"github.com/ariel-frischer/chlog/internal/errors"
	"github.com/ariel-frischer/chlog/internal/output"
)

var (
	buildUnreleased   bool
	buildReleasedOnly bool
	buildOutput       string
	buildWatch        bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Render the changelog to stdout or a file",
	Long: `Render the changelog from its entry files.

By default the full changelog is rendered: the unreleased change set first,
then every release in sorted order.`,
	Example: `  # Render everything to stdout
  chlog build

  # Render only what has not been released yet
  chlog build --unreleased

  # Keep CHANGELOG.md up to date while editing entries
  chlog build -o CHANGELOG.md --watch`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if buildUnreleased && buildReleasedOnly {
			return errors.NewArgumentError(
				"--unreleased and --released-only are mutually exclusive",
				"Pick one of the two flags, or neither for the full changelog",
			)
		}
		if err := buildOnce(cmd); err != nil {
			return err
		}
		if buildWatch {
			return watchAndRebuild(cmd)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().BoolVarP(&buildUnreleased, "unreleased", "u", false, "Render only the unreleased change set")
	buildCmd.Flags().BoolVar(&buildReleasedOnly, "released-only", false, "Render only released change sets")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "Write the rendered changelog to a file instead of stdout")
	buildCmd.Flags().BoolVarP(&buildWatch, "watch", "w", false, "Re-render whenever an entry file changes")
}

// buildOnce loads and renders the changelog a single time.
func buildOnce(cmd *cobra.Command) error {
	cfg, c, err := loadChangelog()
	if err != nil {
		return err
	}

	var out string
	switch {
	case buildUnreleased:
		out, err = c.RenderUnreleased(cfg)
		if goerrors.Is(err, changelog.ErrNoUnreleasedEntries) {
			return errors.NoUnreleasedEntries()
		}
		if err != nil {
			return err
		}
		out += "\n"
	case buildReleasedOnly:
		out = c.RenderReleased(cfg)
	default:
		out = c.RenderFull(cfg)
	}

	if buildOutput != "" {
		if err := os.WriteFile(buildOutput, []byte(out), 0o644); err != nil {
			return errors.WrapWithMessage(err, errors.Runtime, "writing "+buildOutput)
		}
		slog.Info("wrote changelog", "path", buildOutput)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// watchDebounce coalesces bursts of filesystem events into one rebuild.
const watchDebounce = 250 * time.Millisecond

// watchAndRebuild re-renders on every change beneath the changelog
// directory until the command's context is cancelled.
func watchAndRebuild(cmd *cobra.Command) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.WrapWithMessage(err, errors.Runtime, "starting watcher")
	}
	defer watcher.Close()

	if err := watchTree(watcher, flagPath); err != nil {
		return err
	}
	slog.Info("watching for changes", "path", flagPath)

	var timer *time.Timer
	rebuild := make(chan struct{}, 1)
	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case <-rebuild:
			if buildOutput == "" {
				output.PrintRebuildSeparator(cmd.OutOrStdout(), "chlog")
			}
			if err := buildOnce(cmd); err != nil {
				// Report and keep watching; a half-saved entry file should
				// not kill the loop.
				if cliErr := errors.AsCLIError(err); cliErr != nil {
					errors.PrintError(cliErr)
				} else {
					errors.PrintSimpleError(err, errors.Input)
				}
			}
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					watchTree(watcher, event.Name)
				}
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, func() {
				select {
				case rebuild <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "err", err)
		}
	}
}

// watchTree adds root and every directory beneath it to the watcher.
func watchTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
