package errors

import "fmt"

// Common error messages for the nextver CLI.
// These templates ensure consistent, actionable error messages.

// SchemeMismatch creates an error for a previous release tag whose scheme
// differs from the one requested for the run.
func SchemeMismatch(detail string) *CLIError {
	return NewConfigError(
		detail,
		"Set 'scheme' in .nextver.yml to match the repository's release tags",
		"Or pass --scheme explicitly to select the correct scheme",
	)
}

// NotARepository creates an error for running outside a git repository.
func NotARepository(path string) *CLIError {
	return NewRepositoryError(
		fmt.Sprintf("no git repository found at %s", path),
		"Run nextver inside a git repository",
		"Or point --repo at the repository root",
	)
}

// NonConventionalCommit creates an error for strict-mode runs that hit a
// commit outside the conventional grammar.
func NonConventionalCommit(hash, subject string) *CLIError {
	return NewRuntimeError(
		fmt.Sprintf("commit %s is not a conventional commit: %q", hash, subject),
		"Reword the commit to match 'type(scope): description'",
		"Or drop --strict to classify it as 'other'",
	)
}

// InvalidScheme creates an error for an unrecognized scheme name.
func InvalidScheme(provided string) *CLIError {
	return NewArgumentError(
		fmt.Sprintf("invalid version scheme: %s", provided),
		"Use 'semver' or 'calver'",
	)
}
