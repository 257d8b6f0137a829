package cli

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/raveheart1/nextver/internal/errors"
)

func TestExitCode(t *testing.T) {
	tests := map[string]struct {
		err  error
		want int
	}{
		"nil is success":             {nil, ExitSuccess},
		"plain error is runtime":     {stderrors.New("boom"), ExitRuntime},
		"argument error":             {errors.NewArgumentError("bad flag"), ExitInvalidArguments},
		"configuration error":        {errors.SchemeMismatch("mismatch"), ExitConfigError},
		"repository error":           {errors.NotARepository("/tmp"), ExitRepositoryError},
		"runtime category":           {errors.NewRuntimeError("failed"), ExitRuntime},
		"wrapped cli error detected": {fmt.Errorf("outer: %w", errors.SchemeMismatch("m")), ExitConfigError},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
