// Package ollama talks to a local Ollama instance over its native chat API.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/calliope-ai/calliope/internal/config"
	"github.com/calliope-ai/calliope/internal/generation"
	"github.com/rs/zerolog/log"
)

// Service implements generation.Client against POST {endpoint}/api/chat.
type Service struct {
	endpoint   string
	model      string
	timeout    time.Duration
	httpClient *http.Client
}

type chatRequest struct {
	Model    string               `json:"model"`
	Messages []generation.Message `json:"messages"`
	Options  chatOptions          `json:"options"`
	Stream   bool                 `json:"stream"`
}

type chatOptions struct {
	Temperature float32 `json:"temperature"`
	NumPredict  int     `json:"num_predict"`
}

type chatResponse struct {
	Message *generation.Message `json:"message"`
	Error   string              `json:"error"`
}

func NewService(cfg *config.LLMConfig) *Service {
	log.Info().Str("endpoint", cfg.Endpoint).Str("model", cfg.Model).
		Msg("Initialising Ollama generation client")

	return &Service{
		endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
		model:      cfg.Model,
		timeout:    cfg.Timeout,
		httpClient: &http.Client{},
	}
}

// Generate sends one chat request and returns the reply text. A single
// attempt per call; the timeout comes from the LLM config.
func (s *Service) Generate(ctx context.Context, payload *generation.Payload) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	messages := make([]generation.Message, 0, len(payload.Messages)+1)
	messages = append(messages, generation.Message{Role: generation.RoleSystem, Content: payload.System})
	messages = append(messages, payload.Messages...)

	body, err := json.Marshal(chatRequest{
		Model:    s.model,
		Messages: messages,
		Options: chatOptions{
			Temperature: payload.Options.Temperature,
			NumPredict:  payload.Options.MaxTokens,
		},
		Stream: false,
	})
	if err != nil {
		return "", &generation.ProtocolError{Reason: fmt.Sprintf("encode request: %v", err)}
	}

	chatURL := s.endpoint + "/api/chat"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, chatURL, bytes.NewReader(body))
	if err != nil {
		return "", &generation.ProtocolError{Reason: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	log.Debug().Int("message_count", len(messages)).Str("model", s.model).
		Msg("Sending chat request to Ollama")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", classifyTransportError(chatURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", &generation.ProtocolError{
			Status: resp.StatusCode,
			Reason: strings.TrimSpace(string(raw)),
		}
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", &generation.ProtocolError{Reason: fmt.Sprintf("decode response: %v", err)}
	}
	if parsed.Error != "" {
		return "", &generation.ProtocolError{Reason: parsed.Error}
	}
	if parsed.Message == nil {
		return "", &generation.ProtocolError{Reason: "response missing message field"}
	}
	if parsed.Message.Content == "" {
		return "", &generation.ProtocolError{Reason: "response contained empty text"}
	}

	return parsed.Message.Content, nil
}

// classifyTransportError maps an http.Client error onto the typed taxonomy.
func classifyTransportError(endpoint string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return &generation.TimeoutError{Endpoint: endpoint, Err: err}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return &generation.TimeoutError{Endpoint: endpoint, Err: err}
	}

	return &generation.ConnectivityError{Endpoint: endpoint, Err: err}
}
