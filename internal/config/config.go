// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvConfigPath names the environment variable overriding the config path.
const EnvConfigPath = "OBSKIT_CONFIG"

var v *viper.Viper

// DefaultPath returns $OBSKIT_CONFIG, or ~/.obskit/config.yaml
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".obskit", "config.yaml")
	}
	return filepath.Join(home, ".obskit", "config.yaml")
}

// InitConfig initializes the configuration system
func InitConfig(configPath string) error {
	v = viper.New()

	// Set defaults
	setDefaults(filepath.Dir(configPath))

	// OBSKIT_SERVER_PORT overrides server.port, and so on
	v.SetEnvPrefix("obskit")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set config file path
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Create config directory if it doesn't exist
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Try to read existing config
	if err := v.ReadInConfig(); err != nil {
		// If config doesn't exist, create it with defaults
		if os.IsNotExist(err) {
			if err := v.WriteConfigAs(configPath); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults(dataDir string) {
	// Server defaults
	v.SetDefault("server.port", "4455")
	v.SetDefault("server.base_url", "http://localhost:4455")
	v.SetDefault("server.blocked_ips", []string{})
	v.SetDefault("server.api_allowed_ips", []string{})
	v.SetDefault("server.csrf", true)

	// Database defaults
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.path", filepath.Join(dataDir, "obskit.db"))

	// Fonts defaults
	v.SetDefault("fonts.api_url", "https://www.googleapis.com/webfonts/v1/webfonts?sort=popularity")
	v.SetDefault("fonts.cache_ttl", "168h")
	v.SetDefault("fonts.custom", []string{})

	// Counter polling defaults
	v.SetDefault("poll.default_interval", 30)
	v.SetDefault("poll.timeout", "10s")
	v.SetDefault("poll.allowed_hosts", []string{})

	// Rate limit on counter endpoints
	v.SetDefault("ratelimit.capacity", 30)
	v.SetDefault("ratelimit.interval", "1m")
}

// GetString returns a config value as string
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetInt returns a config value as int
func GetInt(key string) int {
	if v == nil {
		return 0
	}
	return v.GetInt(key)
}

// GetFloat64 returns a config value as float64
func GetFloat64(key string) float64 {
	if v == nil {
		return 0
	}
	return v.GetFloat64(key)
}

// GetBool returns a config value as bool
func GetBool(key string) bool {
	if v == nil {
		return false
	}
	return v.GetBool(key)
}

// GetDuration returns a config value as time.Duration
func GetDuration(key string) time.Duration {
	if v == nil {
		return 0
	}
	return v.GetDuration(key)
}

// GetStringSlice returns a config value as a string slice. Comma separated
// strings are split.
func GetStringSlice(key string) []string {
	if v == nil {
		return nil
	}
	return v.GetStringSlice(key)
}

// Set sets a config value and saves to file
func Set(key string, value interface{}) error {
	if v == nil {
		return fmt.Errorf("config not initialized")
	}

	v.Set(key, value)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetAll returns all config values as a map
func GetAll() map[string]interface{} {
	if v == nil {
		return nil
	}
	return v.AllSettings()
}
