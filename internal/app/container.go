// Package app provides the dependency injection container for the application.
package app

import (
	"io"

	"github.com/ziri-ai/ziri-launcher/internal/domain"
	"github.com/ziri-ai/ziri-launcher/internal/infra/config"
	"github.com/ziri-ai/ziri-launcher/internal/infra/executor"
	"github.com/ziri-ai/ziri-launcher/internal/infra/logging"
	"github.com/ziri-ai/ziri-launcher/internal/infra/resolver"
	"github.com/ziri-ai/ziri-launcher/internal/usecase"
)

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Resolver     domain.PathResolver
	Executor     domain.ProcessExecutor
	ConfigLoader domain.ConfigLoader
	Logger       domain.Logger

	// Configuration loaded at startup
	Config *domain.Config
}

// New creates a new Container with the production adapters.
// Configuration problems never block delegation: the loader degrades to
// defaults and records warnings on the config.
func New() *Container {
	configLoader := config.NewLoader()
	cfg, err := configLoader.Load()
	if err != nil || cfg == nil {
		cfg = domain.NewDefaultConfig()
	}

	logger := logging.New(cfg.Log.File, logging.ParseLevel(cfg.Log.Level))

	return &Container{
		Resolver:     resolver.NewClient(),
		Executor:     executor.NewClient(),
		ConfigLoader: configLoader,
		Logger:       logger,
		Config:       cfg,
	}
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(
	pathResolver domain.PathResolver,
	processExecutor domain.ProcessExecutor,
	configLoader domain.ConfigLoader,
	logger domain.Logger,
) *Container {
	cfg, err := configLoader.Load()
	if err != nil || cfg == nil {
		cfg = domain.NewDefaultConfig()
	}
	return &Container{
		Resolver:     pathResolver,
		Executor:     processExecutor,
		ConfigLoader: configLoader,
		Logger:       logger,
		Config:       cfg,
	}
}

// Close releases resources held by the container.
func (c *Container) Close() {
	if closer, ok := c.Logger.(io.Closer); ok {
		_ = closer.Close()
	}
}

// UseCase factory methods

// LaunchUseCase returns a new Launch use case.
// stdout is the writer for the installation guidance message.
func (c *Container) LaunchUseCase(stdout io.Writer) *usecase.Launch {
	return usecase.NewLaunch(c.Resolver, c.Executor, c.ConfigLoader, c.Logger, stdout)
}
