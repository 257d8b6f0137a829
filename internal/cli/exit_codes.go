package cli

import (
	stderrors "errors"

	"github.com/raveheart1/nextver/internal/errors"
)

// Exit codes for the nextver CLI.
// These codes support programmatic composition and CI/CD integration.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitRuntime indicates a failure during command execution
	ExitRuntime = 1

	// ExitConfigError indicates invalid configuration, including a
	// version scheme mismatch against the previous release tag
	ExitConfigError = 2

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 3

	// ExitRepositoryError indicates the git repository could not be read
	ExitRepositoryError = 4
)

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var cliErr *errors.CLIError
	if stderrors.As(err, &cliErr) {
		switch cliErr.Category {
		case errors.Argument:
			return ExitInvalidArguments
		case errors.Configuration:
			return ExitConfigError
		case errors.Repository:
			return ExitRepositoryError
		}
	}
	return ExitRuntime
}
