package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raveheart1/nextver/internal/config"
	"github.com/raveheart1/nextver/internal/errors"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented .nextver.yml config to the current directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ProjectConfigPath()
		if _, err := os.Stat(path); err == nil {
			return errors.NewArgumentError(
				fmt.Sprintf("%s already exists", path),
				"Remove the file first if you want to regenerate it",
			)
		}

		if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
			return errors.WrapWithMessage(err, errors.Runtime, "writing config file")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
