package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/calliope-ai/calliope/internal/services/chat"
	"github.com/calliope-ai/calliope/internal/services/persona"
	"github.com/calliope-ai/calliope/pkg/httpext"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
)

// PersonalityParams are the slider values sent by the UI shell. Pointer
// fields so missing traits default to the neutral midpoint instead of zero.
type PersonalityParams struct {
	Creativity      *float64 `json:"creativity" validate:"omitempty,min=0,max=1"`
	Professionalism *float64 `json:"professionalism" validate:"omitempty,min=0,max=1"`
	Friendliness    *float64 `json:"friendliness" validate:"omitempty,min=0,max=1"`
	Sarcasm         *float64 `json:"sarcasm" validate:"omitempty,min=0,max=1"`
	Verbosity       *float64 `json:"verbosity" validate:"omitempty,min=0,max=1"`
}

// ChatRequest is one turn from the UI shell. Explicit personality sliders
// win over a preset name; with neither, the default profile applies.
type ChatRequest struct {
	Message     string             `json:"message" validate:"required"`
	Preset      string             `json:"preset,omitempty"`
	Personality *PersonalityParams `json:"personality,omitempty"`
}

// HandleChat handles one conversation turn
func HandleChat(chatService chat.Service, presets *persona.Presets, w http.ResponseWriter, r *http.Request) {
	var req ChatRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("Client sent malformed JSON request")
		httpext.JsonError(w, "Invalid request format", http.StatusBadRequest)
		return
	}

	// use a single instance of Validate, it caches struct info
	validate := validator.New(validator.WithRequiredStructEnabled())

	if err := validate.Struct(req); err != nil {
		log.Warn().Err(err).Msg("Request validation failed")
		httpext.JsonError(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	profile, err := ResolveProfile(&req, presets)
	if err != nil {
		log.Warn().Err(err).Str("preset", req.Preset).Msg("Profile resolution failed")
		httpext.JsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	log.Info().
		Str("profile", profile.Name).
		Str("client_ip", r.RemoteAddr).
		Msg("Received chat request")

	resp, err := chatService.ProcessTurn(r.Context(), profile, req.Message)
	if err != nil {
		log.Error().Err(err).Msg("Failed to process chat turn")
		httpext.JsonError(w, "Failed to process chat turn", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
		httpext.JsonError(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	log.Info().
		Str("id", resp.ID).
		Bool("degraded", resp.Degraded).
		Msg("Chat turn processed")
}

// ResolveProfile turns request fields into a complete profile. Explicit
// sliders override presets; absent traits become the neutral midpoint.
func ResolveProfile(req *ChatRequest, presets *persona.Presets) (persona.Profile, error) {
	if req.Personality != nil {
		p := req.Personality
		return persona.Profile{
			Name:            "Custom",
			Creativity:      traitOrNeutral(p.Creativity),
			Professionalism: traitOrNeutral(p.Professionalism),
			Friendliness:    traitOrNeutral(p.Friendliness),
			Sarcasm:         traitOrNeutral(p.Sarcasm),
			Verbosity:       traitOrNeutral(p.Verbosity),
		}, nil
	}

	if req.Preset != "" {
		profile, ok := presets.Get(req.Preset)
		if !ok {
			return persona.Profile{}, fmt.Errorf("unknown preset %q", req.Preset)
		}
		return profile, nil
	}

	return persona.Default(), nil
}

func traitOrNeutral(v *float64) float64 {
	if v == nil {
		return persona.NeutralTrait
	}
	return *v
}
