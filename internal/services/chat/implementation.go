package chat

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/calliope-ai/calliope/internal/generation"
	"github.com/calliope-ai/calliope/internal/services/conversation"
	"github.com/calliope-ai/calliope/internal/services/fallback"
	"github.com/calliope-ai/calliope/internal/services/persona"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Implementation struct {
	mu        sync.Mutex
	client    generation.Client
	responder *fallback.Service
	store     *conversation.Store
}

// NewService wires the turn orchestrator. The generation client is
// injected, never imported concretely, so backends swap without touching
// this package.
func NewService(client generation.Client, responder *fallback.Service, store *conversation.Store) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("generation client is required")
	}
	if responder == nil {
		return nil, fmt.Errorf("fallback responder is required")
	}
	if store == nil {
		store = conversation.NewStore()
	}

	return &Implementation{
		client:    client,
		responder: responder,
		store:     store,
	}, nil
}

// ProcessTurn runs one blocking turn. The lock keeps a single outstanding
// generation call, matching the one-turn-at-a-time session model.
func (s *Implementation) ProcessTurn(ctx context.Context, profile persona.Profile, message string) (*TurnResponse, error) {
	if message == "" {
		return nil, fmt.Errorf("empty message")
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	payload := Compose(profile, s.store.Turns(), message)
	s.store.Append(conversation.Turn{Role: conversation.RoleUser, Text: message})

	log.Debug().Int("message_count", len(payload.Messages)).Str("profile", profile.Name).
		Msg("Processing chat turn")

	reply, degraded := s.generateOrFallback(ctx, payload, profile, message)

	s.store.Append(conversation.Turn{
		Role:     conversation.RoleAssistant,
		Text:     reply,
		Degraded: degraded,
	})

	return &TurnResponse{
		ID:       fmt.Sprintf("calliope-%s", uuid.New().String()[:8]),
		Reply:    reply,
		Degraded: degraded,
	}, nil
}

// generateOrFallback attempts the backend once and degrades to the canned
// responder on any generation failure.
func (s *Implementation) generateOrFallback(ctx context.Context, payload *generation.Payload, profile persona.Profile, message string) (string, bool) {
	reply, err := s.client.Generate(ctx, payload)
	if err == nil {
		return reply, false
	}

	var (
		connErr    *generation.ConnectivityError
		protoErr   *generation.ProtocolError
		timeoutErr *generation.TimeoutError
	)
	switch {
	case errors.As(err, &connErr):
		log.Warn().Err(err).Msg("Generation backend unreachable, using fallback reply")
	case errors.As(err, &timeoutErr):
		log.Warn().Err(err).Msg("Generation request timed out, using fallback reply")
	case errors.As(err, &protoErr):
		log.Error().Err(err).Msg("Generation backend protocol error, using fallback reply")
	default:
		log.Error().Err(err).Msg("Unexpected generation error, using fallback reply")
	}

	return s.responder.Respond(profile, message), true
}

func (s *Implementation) History() []conversation.Turn {
	return s.store.Turns()
}

func (s *Implementation) Reset() {
	s.store.Reset()
	log.Info().Msg("Conversation reset, personality settings retained")
}
