package config_test

import (
	"testing"

	"p5-manager/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "https://registry.npmjs.org", cfg.Registry.Endpoint)
	assert.Equal(t, "p5", cfg.Registry.Package)
	assert.Equal(t, 30, cfg.Registry.TimeoutSeconds)
	assert.Equal(t, "5555", cfg.Server.Port)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("REGISTRY_ENDPOINT", "http://localhost:4873")
	t.Setenv("SERVER_PORT", "9999")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:4873", cfg.Registry.Endpoint)
	assert.Equal(t, "9999", cfg.Server.Port)
}
