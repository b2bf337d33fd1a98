package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/calliope-ai/calliope/internal/services/persona"
	"github.com/rs/zerolog/log"
)

type presetsResponse struct {
	Names   []string                   `json:"names"`
	Presets map[string]persona.Profile `json:"presets"`
	Default persona.Profile            `json:"default"`
}

// HandlePresets returns the preset table for the UI shell's picker
func HandlePresets(presets *persona.Presets, w http.ResponseWriter, r *http.Request) {
	resp := presetsResponse{
		Names:   presets.Names(),
		Presets: presets.All(),
		Default: persona.Default(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Msg("Failed to encode presets response")
	}
}
