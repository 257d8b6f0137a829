// Package cli implements the nextver command tree. Commands collect commit
// history through the git collaborator, run the pure core (parser, resolver,
// changelog builder), and map failures to categorized errors and exit codes.
package cli

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raveheart1/nextver/internal/errors"
	"github.com/raveheart1/nextver/internal/git"
	"github.com/raveheart1/nextver/internal/version"
)

var (
	flagConfig    string
	flagRepo      string
	flagScheme    string
	flagTagPrefix string
	flagStrict    bool
	flagDebug     bool
)

var rootCmd = &cobra.Command{
	Use:   "nextver",
	Short: "Derive the next release version and changelog from git history",
	Long: `nextver inspects the commits since the last release tag, classifies each
one under the Conventional Commits convention, and computes the next version
under SemVer or CalVer along with a grouped changelog.

The repository is never modified: nextver only reads tags and history and
prints its results, so it composes with whatever tagging or publishing step
comes next in your release pipeline.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagDebug {
			git.SetDebugLogger(func(format string, args ...any) {
				fmt.Fprintf(os.Stderr, format+"\n", args...)
			})
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "Path to config file (default .nextver.yml)")
	rootCmd.PersistentFlags().StringVar(&flagRepo, "repo", "", "Path to the git repository (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&flagScheme, "scheme", "", "Version scheme: semver | calver (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagTagPrefix, "tag-prefix", "", "Release tag prefix (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "Fail on non-conventional commits")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug output")
}

// Execute runs the root command and renders structured errors. The returned
// error carries the exit code mapping for main.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	var cliErr *errors.CLIError
	if stderrors.As(err, &cliErr) {
		errors.PrintError(cliErr)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// schemeMismatch converts the resolver's sentinel into a configuration
// error with remediation; other errors pass through unchanged.
func schemeMismatch(err error) error {
	if stderrors.Is(err, version.ErrSchemeMismatch) {
		return errors.SchemeMismatch(err.Error())
	}
	return err
}
