package domain

import "fmt"

// Default delegate names. The launcher looks for a locally installed
// delegate first and falls back to running it through the package runner.
const (
	DefaultDelegate = "ziri"
	DefaultRunner   = "npx"
)

// InstallGuidance is printed to stdout when neither the delegate nor the
// package runner can be found on the search path.
const InstallGuidance = "Ziri requires Node.js >= 18. Please install Node and npm, then `npm -g install ziri`."

// Invocation represents a resolved child-process launch.
// This type is used to pass launch information between layers
// without exposing implementation details.
type Invocation struct {
	Program string   // Absolute path to the executable
	Args    []string // Argument vector, not including the program name
}

// ExitError carries a delegate's exit status through the error path so the
// entry point can relay it exactly.
type ExitError struct {
	Code int
}

// NewExitError creates an ExitError for the given status code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
