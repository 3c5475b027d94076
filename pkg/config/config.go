package config

import (
	"os"
)

const (
	EnvSearchPath = "PATH"
	EnvLogLevel   = "CWDCLIP_LOG_LEVEL"

	DefaultLogLevel = "info"
)

// Config holds the settings cwdclip reads from its environment. There is no
// config file.
type Config struct {
	// SearchPath is the executable search path probed for clipboard programs.
	SearchPath string
	LogLevel   string
}

// Load reads the configuration from the process environment.
func Load() *Config {
	return &Config{
		SearchPath: os.Getenv(EnvSearchPath),
		LogLevel:   getEnv(EnvLogLevel, DefaultLogLevel),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
