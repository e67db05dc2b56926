package cli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/chlog/internal/changelog"
	"github.com/ariel-frischer/chlog/internal/errors"
	"github.com/ariel-frischer/chlog/internal/output"
	"github.com/ariel-frischer/chlog/internal/vcs"
)

var (
	addSection     string
	addComponent   string
	addID          string
	addMessage     string
	addIssueNo     int
	addPullRequest int
	addProjectURL  string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an unreleased changelog entry",
	Long: `Add a new entry to the unreleased change set.

The entry text is rendered through the change template, linking the message
to the given issue or pull request. The project URL is taken from the
configuration, the --project-url flag, or inferred from the repository's
origin remote, in that order.`,
	Example: `  # Entry for an issue
  chlog add --section bug-fixes --issue-no 123 --message "Fixed the thing"

  # Entry for a pull request, filed under a component
  chlog add --section features --component core --pull-request 456 \
    --message "Added the thing"

  # Entry with an explicit filename stem
  chlog add --section breaking-changes --id 789-remove-api \
    --issue-no 789 --message "Removed the old API"`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addSection, "section", "s", "", "Section to file the entry under (required)")
	addCmd.Flags().StringVarP(&addComponent, "component", "c", "", "Component to file the entry under")
	addCmd.Flags().StringVarP(&addID, "id", "i", "", "Entry filename stem (default: <number>-<message slug>)")
	addCmd.Flags().StringVarP(&addMessage, "message", "m", "", "Change description (required)")
	addCmd.Flags().IntVar(&addIssueNo, "issue-no", 0, "Issue number the change relates to")
	addCmd.Flags().IntVar(&addPullRequest, "pull-request", 0, "Pull request number the change relates to")
	addCmd.Flags().StringVar(&addProjectURL, "project-url", "", "Project hosting URL (overrides config and git remote)")
	addCmd.MarkFlagRequired("section")
	addCmd.MarkFlagsMutuallyExclusive("issue-no", "pull-request")
}

func runAdd(cmd *cobra.Command, args []string) error {
	if addMessage == "" {
		return errors.MissingEntryMessage()
	}
	if addIssueNo == 0 && addPullRequest == 0 {
		return errors.NewArgumentErrorWithUsage(
			"an issue or pull request number is required",
			"chlog add --section <section> (--issue-no N | --pull-request N) --message \"...\"",
			"Pass --issue-no for issues or --pull-request for pull requests",
		)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	number, kind := addIssueNo, vcs.Issue
	if addPullRequest != 0 {
		number, kind = addPullRequest, vcs.PullRequest
	}

	proj, err := resolveProject(cfg)
	if err != nil {
		return err
	}

	id := addID
	if id == "" {
		id = fmt.Sprintf("%d-%s", number, slugify(addMessage))
	}

	content, err := changelog.RenderEntryTemplate(cfg, flagPath, changelog.TemplateParams{
		ProjectURL: proj.URL,
		Section:    addSection,
		Component:  addComponent,
		ID:         id,
		ChangeID:   number,
		ChangeURL:  proj.ChangeURL(kind, number),
		Message:    addMessage,
		Bullet:     string(cfg.BulletStyle),
	})
	if err != nil {
		return errors.Wrap(err, errors.Configuration)
	}

	if err := changelog.AddUnreleasedEntry(cfg, flagPath, addSection, addComponent, id, content+"\n"); err != nil {
		return mapLoadError(err)
	}
	output.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Added %s",
		changelog.EntryFilePath(cfg, cfg.Unreleased.Folder, addSection, addComponent, id)))
	return nil
}

// resolveProject picks the project URL: flag > config > git remote.
func resolveProject(cfg *changelog.Config) (*vcs.Project, error) {
	raw := addProjectURL
	if raw == "" {
		raw = cfg.ProjectURL
	}
	if raw != "" {
		proj, err := vcs.FromURL(raw)
		if err != nil {
			return nil, errors.WrapWithMessage(err, errors.Configuration, "invalid project URL")
		}
		return proj, nil
	}
	proj, err := vcs.FromDir(flagPath)
	if err != nil {
		return nil, errors.GitRemoteNotDetected()
	}
	return proj, nil
}

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// slugify turns a message into a short filename-safe stem.
func slugify(message string) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(message), "-")
	slug = strings.Trim(slug, "-")
	const maxWords = 5
	words := strings.SplitN(slug, "-", maxWords+1)
	if len(words) > maxWords {
		words = words[:maxWords]
	}
	return strings.Join(words, "-")
}
