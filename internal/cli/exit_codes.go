package cli

import "github.com/ariel-frischer/chlog/internal/errors"

// Exit codes for the chlog CLI
// These codes support programmatic composition and CI/CD integration
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure
	ExitFailure = 1

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 3

	// ExitInvalidInput indicates malformed changelog content
	ExitInvalidInput = 4
)

// ExitCode maps a command error to its exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if cliErr := errors.AsCLIError(err); cliErr != nil {
		switch cliErr.Category {
		case errors.Argument:
			return ExitInvalidArguments
		case errors.Input:
			return ExitInvalidInput
		}
	}
	return ExitFailure
}
