// Package config reads secrets and settings shared by every command.
package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/agentstation/teammap/pkg/constants"
	"github.com/agentstation/teammap/pkg/errors"
)

// EnvKey returns the environment variable for a config key:
// "registry.token" becomes TEAMMAP_REGISTRY_TOKEN.
func EnvKey(key string) string {
	r := strings.NewReplacer(".", "_", "-", "_")
	return constants.EnvPrefix + "_" + strings.ToUpper(r.Replace(key))
}

// GetString is a helper to get string values for a config key.
// The environment wins over Viper configuration.
func GetString(key string) string {
	if v := os.Getenv(EnvKey(key)); v != "" {
		return v
	}
	return viper.GetString(key)
}

// RequireString returns the value for key, or a ConfigError naming the key
// and its environment variable when it is unset.
func RequireString(key string) (string, error) {
	v := GetString(key)
	if v == "" {
		return "", errors.NewConfigError(key, "not set (config key "+key+" or "+EnvKey(key)+")", nil)
	}
	return v, nil
}
