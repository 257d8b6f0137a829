package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryString(t *testing.T) {
	tests := map[string]struct {
		category ErrorCategory
		want     string
	}{
		"argument":      {Argument, "Argument Error"},
		"configuration": {Configuration, "Configuration Error"},
		"repository":    {Repository, "Repository Error"},
		"runtime":       {Runtime, "Runtime Error"},
		"unknown":       {ErrorCategory(99), "Error"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.category.String())
		})
	}
}

func TestWrapPreservesChain(t *testing.T) {
	sentinel := stderrors.New("boom")
	wrapped := Wrap(fmt.Errorf("context: %w", sentinel), Repository)

	require.NotNil(t, wrapped)
	assert.Equal(t, Repository, wrapped.Category)
	assert.ErrorIs(t, wrapped, sentinel)

	assert.Nil(t, Wrap(nil, Runtime))
}

func TestFormatErrorPlain(t *testing.T) {
	err := &CLIError{
		Category:    Configuration,
		Message:     "scheme mismatch",
		Usage:       "nextver next --scheme semver",
		Remediation: []string{"set scheme in .nextver.yml", "or pass --scheme"},
	}

	got := FormatErrorPlain(err)
	assert.Contains(t, got, "Error [Configuration Error]: scheme mismatch")
	assert.Contains(t, got, "Usage: nextver next --scheme semver")
	assert.Contains(t, got, "To fix this:")
	assert.Contains(t, got, "  • set scheme in .nextver.yml")

	assert.Empty(t, FormatErrorPlain(nil))
}

func TestMessageConstructors(t *testing.T) {
	assert.Equal(t, Configuration, SchemeMismatch("detail").Category)
	assert.Equal(t, Repository, NotARepository("/tmp/x").Category)
	assert.Equal(t, Runtime, NonConventionalCommit("abc1234", "random words").Category)
	assert.Equal(t, Argument, InvalidScheme("chronover").Category)
}
