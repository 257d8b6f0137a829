package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/raveheart1/nextver/internal/changelog"
	"github.com/raveheart1/nextver/internal/errors"
	"github.com/raveheart1/nextver/internal/version"
)

var changelogFormatFlag string

var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Render the changelog for the commits since the last release",
	Long: `Group the commits since the latest release tag into changelog sections
and render them, headed by the resolved next version.

Breaking changes always render first, followed by features, fixes,
performance improvements, and the remaining commit types. A breaking commit
appears only under Breaking Changes, not under its ordinary type section.

Examples:
  nextver changelog                  # Markdown to stdout
  nextver changelog --format yaml    # Section model as YAML
  nextver changelog >> CHANGELOG.md  # Prepend-style workflows`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if changelogFormatFlag != "markdown" && changelogFormatFlag != "yaml" {
			return errors.NewArgumentError(
				fmt.Sprintf("invalid format: %s", changelogFormatFlag),
				"Use --format markdown or --format yaml",
			)
		}

		h, err := collectHistory()
		if err != nil {
			return err
		}

		// The resolver and the builder are pure transformations over the
		// same commit slice, so they run concurrently.
		var (
			next     version.Version
			sections []changelog.Section
		)
		var g errgroup.Group
		g.Go(func() error {
			var err error
			next, err = version.Resolve(h.previous, h.commits, h.scheme, version.CurrentPeriod(time.Now()))
			return schemeMismatch(err)
		})
		g.Go(func() error {
			sections = changelog.Build(h.commits)
			return nil
		})
		if err := g.Wait(); err != nil {
			return err
		}

		doc := &changelog.Document{
			Version:  version.FormatTag(next, h.cfg.TagPrefix),
			Date:     time.Now().Format("2006-01-02"),
			Sections: sections,
		}

		if changelogFormatFlag == "yaml" {
			return changelog.RenderYAML(doc, cmd.OutOrStdout())
		}
		opts := changelog.RenderOptions{IncludeHash: h.cfg.IncludeHash}
		return changelog.RenderMarkdown(doc, cmd.OutOrStdout(), opts)
	},
}

func init() {
	rootCmd.AddCommand(changelogCmd)

	changelogCmd.Flags().StringVar(&changelogFormatFlag, "format", "markdown", "Output format: markdown | yaml")
}
