package config

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// GetEnvOrDefault returns the value of an environment variable or a default value
func GetEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" && defaultValue == "" {
		log.Warn().Str("key", key).Msg("Empty value and default for environment variable")
	}
	if value == "" {
		return defaultValue
	}
	return value
}

// ParseEnvInt reads an integer environment variable, falling back to the
// default when unset or unparseable
func ParseEnvInt(key string, defaultValue int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(val)
	if err != nil {
		log.Warn().Str("key", key).Str("value", val).Int("default", defaultValue).
			Msg("Invalid integer environment variable, using default")
		return defaultValue
	}

	return parsed
}

// ParseEnvDuration reads a duration environment variable ("30s", "2m"),
// falling back to the default when unset or unparseable
func ParseEnvDuration(key string, defaultValue time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}

	parsed, err := time.ParseDuration(val)
	if err != nil {
		log.Warn().Str("key", key).Str("value", val).Dur("default", defaultValue).
			Msg("Invalid duration environment variable, using default")
		return defaultValue
	}

	return parsed
}
