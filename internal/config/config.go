// Package config loads runtime settings for the TaskKeeper CLI.
//
// Values come from defaults, an optional .env file in the working directory,
// and TASKKEEPER_-prefixed environment variables, in ascending precedence.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds runtime settings for the TaskKeeper CLI.
type Config struct {
	// DataDir is the directory holding users.json, users.env, the security
	// log and the per-user task files.
	DataDir string `mapstructure:"DATA_DIR"`

	// MaxLoginAttempts is the number of consecutive failed logins after
	// which an account is blocked.
	MaxLoginAttempts int `mapstructure:"MAX_LOGIN_ATTEMPTS"`

	// BlockDuration is how long a blocked account stays blocked.
	BlockDuration time.Duration `mapstructure:"BLOCK_DURATION"`

	// LogFile receives structured logs. Empty selects a file inside DataDir.
	LogFile string `mapstructure:"LOG_FILE"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `mapstructure:"LOG_LEVEL"`
}

const envPrefix = "TASKKEEPER"

// Load constructs a Config, applies defaults, then overlays values from an
// optional .env file and from environment variables. Later sources take
// precedence over earlier ones.
func Load() (*Config, error) {
	v := viper.New()

	// Optional .env file next to the binary's working directory.
	v.AddConfigPath(".")
	v.SetConfigName(".env")
	v.SetConfigType("env")

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("DATA_DIR", "users")
	v.SetDefault("MAX_LOGIN_ATTEMPTS", 5)
	v.SetDefault("BLOCK_DURATION", 30*time.Minute)
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("LOG_LEVEL", "info")

	if err := v.ReadInConfig(); err != nil {
		// A missing .env file is fine; anything else is a real error.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if strings.TrimSpace(cfg.DataDir) == "" {
		cfg.DataDir = "users"
	}
	if cfg.MaxLoginAttempts <= 0 {
		cfg.MaxLoginAttempts = 5
	}
	if cfg.BlockDuration <= 0 {
		cfg.BlockDuration = 30 * time.Minute
	}

	return &cfg, nil
}
