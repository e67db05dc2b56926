package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var findDuplicatesCmd = &cobra.Command{
	Use:   "find-duplicates",
	Short: "Find entries with identical content",
	Long: `Compare the content of every entry against every other entry, across
releases, and report each pair of matching entries.

Duplicates usually mean an unreleased entry was copied into a release
without removing the original.`,
	Example:      `  chlog find-duplicates`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, c, err := loadChangelog()
		if err != nil {
			return err
		}
		dups := c.FindDuplicates()
		if len(dups) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No duplicate entries found")
			return nil
		}
		for _, d := range dups {
			fmt.Fprintf(cmd.OutOrStdout(), "%s duplicates %s\n",
				d.A.RelPath(cfg), d.B.RelPath(cfg))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(findDuplicatesCmd)
}
