// Package domain contains the core types, ports, and errors for ziri-launcher.
package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrDelegateNotFound = errors.New("executable not found on search path")
	ErrEmptyProgram     = errors.New("invocation program cannot be empty")
)
