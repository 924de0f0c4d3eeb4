package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/teammap/pkg/errors"
)

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "TEAMMAP_REGISTRY_TOKEN", EnvKey("registry.token"))
	assert.Equal(t, "TEAMMAP_CLAIM_SALT", EnvKey("claim-salt"))
}

func TestGetString(t *testing.T) {
	viper.Set("registry.users_url", "https://viper.example.org")
	t.Cleanup(func() { viper.Set("registry.users_url", "") })

	assert.Equal(t, "https://viper.example.org", GetString("registry.users_url"))

	t.Setenv("TEAMMAP_REGISTRY_USERS_URL", "https://env.example.org")
	assert.Equal(t, "https://env.example.org", GetString("registry.users_url"))
}

func TestRequireString(t *testing.T) {
	_, err := RequireString("registry.missing_key")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrConfig)
	assert.Contains(t, err.Error(), "TEAMMAP_REGISTRY_MISSING_KEY")

	t.Setenv("TEAMMAP_REGISTRY_MISSING_KEY", "x")
	v, err := RequireString("registry.missing_key")
	require.NoError(t, err)
	assert.Equal(t, "x", v)
}
