// Package chat composes personality-steered prompts and orchestrates one
// conversation turn: compose, generate or fall back, append to transcript.
package chat

import (
	"context"

	"github.com/calliope-ai/calliope/internal/services/conversation"
	"github.com/calliope-ai/calliope/internal/services/persona"
)

// TurnResponse is the outcome of one processed turn.
type TurnResponse struct {
	ID       string `json:"id"`
	Reply    string `json:"reply"`
	Degraded bool   `json:"degraded"`
}

// Service defines the interface the UI shell calls per turn.
type Service interface {
	// ProcessTurn runs one turn. Generation failures are recovered with a
	// degraded fallback reply and never surface to the caller.
	ProcessTurn(ctx context.Context, profile persona.Profile, message string) (*TurnResponse, error)

	// History returns the transcript in order, for rendering.
	History() []conversation.Turn

	// Reset clears the transcript while keeping the configured personality.
	Reset()
}
