package config

import (
	"time"

	"github.com/rs/zerolog/log"
)

type RateLimitConfig struct {
	Enabled bool
	MaxHits int
	Window  time.Duration
}

// GetRateLimitConfig returns the rate limit settings for a named surface.
// Limits are per client IP within the window.
func GetRateLimitConfig(key string) RateLimitConfig {
	enabled := GetEnvOrDefault("CALLIOPE_RATELIMIT_ENABLED", "false") == "true"

	configs := map[string]RateLimitConfig{
		"chat": {
			Enabled: enabled,
			MaxHits: ParseEnvInt("CALLIOPE_RATELIMIT_CHAT", 30), // 30 turns per minute
			Window:  time.Minute,
		},
	}

	if config, exists := configs[key]; exists {
		return config
	}

	log.Warn().Str("key", key).Msg("No rate limit config found for key")
	return RateLimitConfig{Enabled: false}
}
