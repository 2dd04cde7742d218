// Package usecase implements the application use cases for ziri-launcher.
package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/ziri-ai/ziri-launcher/internal/domain"
)

// LaunchInput contains the parameters for delegating to the underlying tool.
type LaunchInput struct {
	// Args is the argument vector to forward, excluding the launcher's own
	// program name. It is passed through verbatim.
	Args []string
}

// LaunchOutput contains the result of a delegation.
type LaunchOutput struct {
	Program  string // Path of the executable that ran; empty if none was found
	ExitCode int    // Exit status to relay to the caller
}

// Launch is the use case for resolving a delegate and running it.
type Launch struct {
	resolver domain.PathResolver
	executor domain.ProcessExecutor
	config   domain.ConfigLoader
	logger   domain.Logger
	stdout   io.Writer
}

// NewLaunch creates a new Launch use case.
// stdout is the writer for the installation guidance message; the delegate
// itself writes to the inherited process streams, not to this writer.
func NewLaunch(
	resolver domain.PathResolver,
	executor domain.ProcessExecutor,
	config domain.ConfigLoader,
	logger domain.Logger,
	stdout io.Writer,
) *Launch {
	return &Launch{
		resolver: resolver,
		executor: executor,
		config:   config,
		logger:   logger,
		stdout:   stdout,
	}
}

// Execute delegates to the underlying tool by:
// 1. Resolving the configured delegate (default "ziri") on the search path
//    and running it with exactly the input argument vector
// 2. Falling back to the package runner (default "npx") invoked with the
//    delegate name prepended to the vector
// 3. Printing installation guidance and returning exit status 1 when
//    neither executable resolves
//
// The child's exit status is relayed in the output; a failure to spawn a
// resolved executable is returned as an error so the caller sees a failure
// rather than false success.
func (uc *Launch) Execute(ctx context.Context, in LaunchInput) (*LaunchOutput, error) {
	cfg, err := uc.config.Load()
	if err != nil {
		uc.logger.Warn("config", fmt.Sprintf("load config: %v (using defaults)", err))
	}
	if cfg == nil {
		cfg = domain.NewDefaultConfig()
	}

	if path, err := uc.resolver.Resolve(cfg.Delegate); err == nil {
		uc.logger.Debug("resolve", fmt.Sprintf("%s -> %s", cfg.Delegate, path))
		return uc.run(ctx, path, in.Args)
	}
	uc.logger.Debug("resolve", fmt.Sprintf("%s not found, trying %s", cfg.Delegate, cfg.Runner))

	if path, err := uc.resolver.Resolve(cfg.Runner); err == nil {
		uc.logger.Debug("resolve", fmt.Sprintf("%s -> %s", cfg.Runner, path))
		args := append([]string{cfg.Delegate}, in.Args...)
		return uc.run(ctx, path, args)
	}

	uc.logger.Info("resolve", "no delegate found, printing install guidance")
	if _, err := fmt.Fprintln(uc.stdout, domain.InstallGuidance); err != nil {
		return nil, fmt.Errorf("write guidance: %w", err)
	}
	return &LaunchOutput{ExitCode: 1}, nil
}

func (uc *Launch) run(ctx context.Context, program string, args []string) (*LaunchOutput, error) {
	code, err := uc.executor.Run(ctx, &domain.Invocation{Program: program, Args: args})
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", program, err)
	}
	uc.logger.Debug("exec", fmt.Sprintf("%s exited with status %d", program, code))
	return &LaunchOutput{Program: program, ExitCode: code}, nil
}
