// Package openaicompat talks to any OpenAI-compatible chat completions
// endpoint, including Ollama's /v1 surface and hosted providers.
package openaicompat

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/calliope-ai/calliope/internal/config"
	"github.com/calliope-ai/calliope/internal/generation"
	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"
)

// Service implements generation.Client via the go-openai SDK.
type Service struct {
	client *openai.Client
	model  string
	cfg    *config.LLMConfig
}

func NewService(cfg *config.LLMConfig) *Service {
	log.Info().Str("endpoint", cfg.Endpoint).Str("model", cfg.Model).
		Msg("Initialising OpenAI-compatible generation client")

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.Endpoint

	return &Service{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		cfg:    cfg,
	}
}

// Generate sends one chat completion request and returns the reply text.
func (s *Service) Generate(ctx context.Context, payload *generation.Payload) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	messages := make([]openai.ChatCompletionMessage, 0, len(payload.Messages)+1)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: payload.System,
	})
	for _, msg := range payload.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.model,
		Messages:    messages,
		Temperature: payload.Options.Temperature,
		MaxTokens:   payload.Options.MaxTokens,
	})
	if err != nil {
		return "", s.classifyError(err)
	}

	if len(resp.Choices) == 0 {
		return "", &generation.ProtocolError{Reason: "no response choices returned"}
	}

	text := resp.Choices[0].Message.Content
	if text == "" {
		return "", &generation.ProtocolError{Reason: "response contained empty text"}
	}

	return text, nil
}

func (s *Service) classifyError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &generation.TimeoutError{Endpoint: s.cfg.Endpoint, Err: err}
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return &generation.ProtocolError{
			Status: apiErr.HTTPStatusCode,
			Reason: apiErr.Message,
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return &generation.TimeoutError{Endpoint: s.cfg.Endpoint, Err: err}
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return &generation.ProtocolError{
			Status: reqErr.HTTPStatusCode,
			Reason: fmt.Sprintf("request rejected: %v", reqErr.Err),
		}
	}

	return &generation.ConnectivityError{Endpoint: s.cfg.Endpoint, Err: err}
}
