package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/raveheart1/nextver/internal/output"
	"github.com/raveheart1/nextver/internal/version"
)

var nextTagFlag bool

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Print the next version derived from commits since the last release",
	Long: `Compute the next version from the commits since the latest release tag.

Commits are classified under the Conventional Commits convention: a breaking
change bumps major, a feature bumps minor, a fix or performance improvement
bumps patch. Under CalVer any of those advances the calendar version. When
no commit carries release intent the previous version is printed unchanged.

The version is printed to stdout; progress and the previous/next summary go
to stderr, so the output is safe to capture in scripts:

  VERSION=$(nextver next --tag)`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := collectHistory()
		if err != nil {
			return err
		}

		next, err := version.Resolve(h.previous, h.commits, h.scheme, version.CurrentPeriod(time.Now()))
		if err != nil {
			return schemeMismatch(err)
		}

		output.PrintCommitCount(cmd.ErrOrStderr(), len(h.commits), h.prevTag)
		output.PrintVersionSummary(cmd.ErrOrStderr(), h.previous.String(), next.String(), next != h.previous)

		if nextTagFlag {
			fmt.Fprintln(cmd.OutOrStdout(), version.FormatTag(next, h.cfg.TagPrefix))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), next.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nextCmd)

	nextCmd.Flags().BoolVar(&nextTagFlag, "tag", false, "Print the version as a tag name (with the configured prefix)")
}
