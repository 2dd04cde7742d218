// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"

	"github.com/ziri-ai/ziri-launcher/internal/domain"
)

// MockResolver is a test double for domain.PathResolver.
type MockResolver struct {
	Paths map[string]string // name -> resolved path
	Err   error             // returned for every lookup when set
}

// Ensure MockResolver implements domain.PathResolver interface.
var _ domain.PathResolver = (*MockResolver)(nil)

// NewMockResolver creates a new MockResolver with an initialized path map.
func NewMockResolver() *MockResolver {
	return &MockResolver{Paths: make(map[string]string)}
}

// Resolve returns the configured path or domain.ErrDelegateNotFound.
func (m *MockResolver) Resolve(name string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if path, ok := m.Paths[name]; ok {
		return path, nil
	}
	return "", domain.ErrDelegateNotFound
}

// MockExecutor is a test double for domain.ProcessExecutor.
type MockExecutor struct {
	Invocations []domain.Invocation // every Run call, in order
	ExitCode    int                 // returned for every run
	RunErr      error               // simulates a spawn failure when set
}

// Ensure MockExecutor implements domain.ProcessExecutor interface.
var _ domain.ProcessExecutor = (*MockExecutor)(nil)

// Run records the invocation and returns the configured result.
func (m *MockExecutor) Run(_ context.Context, inv *domain.Invocation) (int, error) {
	m.Invocations = append(m.Invocations, *inv)
	if m.RunErr != nil {
		return 0, m.RunErr
	}
	return m.ExitCode, nil
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config *domain.Config
	Err    error
}

// Ensure MockConfigLoader implements domain.ConfigLoader interface.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config, defaulting when none is set.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Config != nil {
		return m.Config, nil
	}
	return domain.NewDefaultConfig(), nil
}

// NopLogger is a no-op domain.Logger.
type NopLogger struct{}

// Ensure NopLogger implements domain.Logger interface.
var _ domain.Logger = NopLogger{}

// Debug does nothing.
func (NopLogger) Debug(string, string) {}

// Info does nothing.
func (NopLogger) Info(string, string) {}

// Warn does nothing.
func (NopLogger) Warn(string, string) {}

// Error does nothing.
func (NopLogger) Error(string, string) {}
