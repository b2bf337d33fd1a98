package config

import (
	"fmt"
	"time"
)

// Supported generation providers.
const (
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
)

// LLMConfig holds the generation backend settings. Read once at startup,
// never mutated afterwards.
type LLMConfig struct {
	Provider string
	Endpoint string
	Model    string
	APIKey   string
	Timeout  time.Duration
}

// GetLLMConfig builds the generation backend configuration from the
// environment. Returns a ConfigError for unknown providers.
func GetLLMConfig() (*LLMConfig, error) {
	cfg := &LLMConfig{
		Provider: GetEnvOrDefault("CALLIOPE_LLM_PROVIDER", ProviderOllama),
		Model:    GetEnvOrDefault("CALLIOPE_LLM_MODEL", "phi3:mini"),
		APIKey:   GetEnvOrDefault("CALLIOPE_LLM_API_KEY", "unused"),
		Timeout:  ParseEnvDuration("CALLIOPE_LLM_TIMEOUT", 30*time.Second),
	}

	switch cfg.Provider {
	case ProviderOllama:
		cfg.Endpoint = GetEnvOrDefault("CALLIOPE_LLM_ENDPOINT", "http://localhost:11434")
	case ProviderOpenAI:
		// Ollama also serves an OpenAI-compatible API under /v1
		cfg.Endpoint = GetEnvOrDefault("CALLIOPE_LLM_ENDPOINT", "http://localhost:11434/v1")
	default:
		return nil, &ConfigError{
			Source: "llm",
			Reason: fmt.Sprintf("unknown provider %q (expected %q or %q)", cfg.Provider, ProviderOllama, ProviderOpenAI),
		}
	}

	if cfg.Timeout <= 0 {
		return nil, &ConfigError{Source: "llm", Reason: "timeout must be positive"}
	}

	return cfg, nil
}
