package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsuplift/jsuplift/pkg/runner"
)

func resultWithSeverities(errs, warns int) *runner.Result {
	r := &runner.Result{}
	r.Stats.SuggestionsBySeverity = map[string]int{
		"error":   errs,
		"warning": warns,
	}
	return r
}

func TestExitCodeFromResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result *runner.Result
		strict bool
		want   int
	}{
		{"nil result", nil, false, ExitSuccess},
		{"clean", resultWithSeverities(0, 0), false, ExitSuccess},
		{"errors", resultWithSeverities(2, 0), false, ExitFindingsErrors},
		{"warnings lenient", resultWithSeverities(0, 3), false, ExitSuccess},
		{"warnings strict", resultWithSeverities(0, 3), true, ExitFindingsWarnings},
		{"errors win over warnings", resultWithSeverities(1, 3), true, ExitFindingsErrors},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ExitCodeFromResult(tt.result, tt.strict))
		})
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitInternalError, ExitCode(errors.New("boom")))
	assert.Equal(t, ExitConfigError,
		ExitCode(&ExitError{Code: ExitConfigError, Err: errors.New("bad config")}))

	wrapped := &ExitError{Code: ExitFindingsErrors, Err: ErrFindingsFound}
	assert.Equal(t, ExitFindingsErrors, ExitCode(wrapped))
	assert.ErrorIs(t, wrapped, ErrFindingsFound)
}
