package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ziri-ai/ziri-launcher/internal/infra/config"
	"github.com/ziri-ai/ziri-launcher/internal/testutil"
)

func TestNew_BindsProductionAdapters(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.EnvDelegate, "")
	t.Setenv(config.EnvRunner, "")

	c := New()
	defer c.Close()

	assert.NotNil(t, c.Resolver)
	assert.NotNil(t, c.Executor)
	assert.NotNil(t, c.ConfigLoader)
	assert.NotNil(t, c.Logger)
	require.NotNil(t, c.Config)
	assert.Equal(t, "ziri", c.Config.Delegate)
	assert.Equal(t, "npx", c.Config.Runner)
}

func TestNewWithDeps_UsesProvidedDependencies(t *testing.T) {
	resolver := testutil.NewMockResolver()
	exec := &testutil.MockExecutor{}
	loader := &testutil.MockConfigLoader{}

	c := NewWithDeps(resolver, exec, loader, testutil.NopLogger{})
	defer c.Close()

	assert.Same(t, resolver, c.Resolver)
	assert.Same(t, exec, c.Executor)
	require.NotNil(t, c.Config)

	var stdout bytes.Buffer
	assert.NotNil(t, c.LaunchUseCase(&stdout))
}
