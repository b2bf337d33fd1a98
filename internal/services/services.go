package services

import (
	"fmt"
	"time"

	"github.com/calliope-ai/calliope/internal/config"
	"github.com/calliope-ai/calliope/internal/generation"
	"github.com/calliope-ai/calliope/internal/infrastructure/ollama"
	"github.com/calliope-ai/calliope/internal/infrastructure/openaicompat"
	"github.com/calliope-ai/calliope/internal/services/chat"
	"github.com/calliope-ai/calliope/internal/services/conversation"
	"github.com/calliope-ai/calliope/internal/services/fallback"
	"github.com/calliope-ai/calliope/internal/services/persona"
	"github.com/rs/zerolog/log"
)

type Services struct {
	chatService chat.Service
	presets     *persona.Presets
}

// InitializeServices builds the service graph once at startup. Any error
// here is fatal configuration; nothing is retried or defaulted.
func InitializeServices() (*Services, error) {
	log.Info().Msg("Initializing core services")

	llmCfg, err := config.GetLLMConfig()
	if err != nil {
		return nil, err
	}

	presets, err := persona.LoadPresets(config.GetPresetsPath())
	if err != nil {
		return nil, err
	}

	client := newGenerationClient(llmCfg)

	responder := fallback.NewService(uint64(time.Now().UnixNano()))

	chatService, err := chat.NewService(client, responder, conversation.NewStore())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize chat service: %w", err)
	}

	log.Info().Str("provider", llmCfg.Provider).Msg("All services initialized successfully")

	return &Services{
		chatService: chatService,
		presets:     presets,
	}, nil
}

// newGenerationClient is the provider factory. The rest of the code only
// ever sees the generation.Client interface.
func newGenerationClient(cfg *config.LLMConfig) generation.Client {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return openaicompat.NewService(cfg)
	default:
		return ollama.NewService(cfg)
	}
}

// GetChatService returns the chat service
func (s *Services) GetChatService() chat.Service {
	return s.chatService
}

// GetPresets returns the preset table
func (s *Services) GetPresets() *persona.Presets {
	return s.presets
}
