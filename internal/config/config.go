// Package config loads the tool configuration from viper and the process environment.
package config

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Recognized environment variables
const (
	// EnvPushoverUser holds the Pushover user key
	EnvPushoverUser = "PUSHOVER_USER"
	// EnvPushoverToken holds the Pushover application token
	EnvPushoverToken = "PUSHOVER_TOKEN"
)

// DefaultEnvFile is the settings file read into the environment by Load.
const DefaultEnvFile = ".env"

// Default values
const (
	DefaultOpenLibraryURL = "https://openlibrary.org"
	DefaultCoversURL      = "https://covers.openlibrary.org"
	DefaultPushoverURL    = "https://api.pushover.net/1/messages.json"
	DefaultQuery          = "books written by James Patterson"
	DefaultLimit          = 3
)

// Credentials is the Pushover user/token pair. Either value may be empty.
type Credentials struct {
	User  string
	Token string
}

// SetDefaults registers the default configuration values
func SetDefaults() {
	viper.SetDefault("openlibrary.baseurl", DefaultOpenLibraryURL)
	viper.SetDefault("covers.baseurl", DefaultCoversURL)
	viper.SetDefault("pushover.url", DefaultPushoverURL)
	viper.SetDefault("search.query", DefaultQuery)
	viper.SetDefault("search.limit", DefaultLimit)
}

// Load reads the given env files (DefaultEnvFile when none are given) into
// the process environment, overriding existing values, and returns the
// notification credentials. Missing files and missing keys are tolerated.
func Load(envFiles ...string) Credentials {
	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}

	for _, file := range envFiles {
		if err := godotenv.Overload(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				slog.Debug("Env file not found", "file", file)
				continue
			}
			slog.Warn("Failed to load env file", "file", file, "error", err)
		}
	}

	if err := viper.BindEnv("pushover.user", EnvPushoverUser); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}
	if err := viper.BindEnv("pushover.token", EnvPushoverToken); err != nil {
		slog.Error("Failed to bind environment variable", "error", err)
	}

	return Credentials{
		User:  viper.GetString("pushover.user"),
		Token: viper.GetString("pushover.token"),
	}
}
