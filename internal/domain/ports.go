package domain

import "context"

// PathResolver locates executables on the system search path.
type PathResolver interface {
	// Resolve returns the absolute path of the named executable using the
	// host platform's lookup rules. A lookup miss reports
	// ErrDelegateNotFound.
	Resolve(name string) (string, error)
}

// ProcessExecutor runs child processes.
type ProcessExecutor interface {
	// Run spawns the invocation with the launcher's standard streams
	// inherited, blocks until it terminates, and returns its exit status.
	// An error is returned only when the process could not be started or
	// waited on; a nonzero child exit is a status, not an error.
	Run(ctx context.Context, inv *Invocation) (int, error)
}

// ConfigLoader loads the launcher configuration.
type ConfigLoader interface {
	// Load returns the merged configuration. Implementations degrade to
	// defaults on missing or broken sources rather than failing.
	Load() (*Config, error)
}

// Logger records trace messages by category.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}
