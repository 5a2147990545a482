package testutil

import (
	"testing"

	"github.com/lepinkainen/bookcover/internal/config"
	"github.com/spf13/viper"
)

// ResetConfig resets viper to the application defaults, points the env
// file at a path that does not exist and sets fixed Pushover credentials.
// Everything is reset again when the test completes.
func ResetConfig(t *testing.T, env *TestEnv) {
	t.Helper()

	viper.Reset()
	config.SetDefaults()
	viper.Set("envfile", env.Path("missing.env"))

	t.Setenv(config.EnvPushoverUser, "test-user")
	t.Setenv(config.EnvPushoverToken, "test-token")

	t.Cleanup(viper.Reset)
}

// SetViperValue sets a viper configuration value and schedules cleanup.
func SetViperValue(t *testing.T, key string, value any) {
	t.Helper()

	oldValue := viper.Get(key)
	hadValue := viper.IsSet(key)

	viper.Set(key, value)

	t.Cleanup(func() {
		if hadValue {
			viper.Set(key, oldValue)
		}
	})
}
