package cli

import (
	"errors"

	"github.com/jsuplift/jsuplift/pkg/runner"
)

// Exit codes for jsuplift.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitFindingsErrors indicates analysis completed but found
	// error-severity suggestions.
	ExitFindingsErrors = 1

	// ExitFindingsWarnings indicates analysis completed but found
	// warning-severity suggestions (when strict mode).
	ExitFindingsWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitError carries a process exit code through the command's error return.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode extracts the exit code from an error. Errors without an
// embedded code map to ExitInternalError; nil maps to ExitSuccess.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitInternalError
}

// ExitCodeFromResult determines the exit code based on result and strict mode.
func ExitCodeFromResult(result *runner.Result, strict bool) int {
	if result == nil {
		return ExitSuccess
	}

	errors := result.Stats.SuggestionsBySeverity["error"]
	warnings := result.Stats.SuggestionsBySeverity["warning"]

	if errors > 0 {
		return ExitFindingsErrors
	}

	if strict && warnings > 0 {
		return ExitFindingsWarnings
	}

	return ExitSuccess
}
