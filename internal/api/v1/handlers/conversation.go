package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/calliope-ai/calliope/internal/services/chat"
	"github.com/calliope-ai/calliope/internal/services/conversation"
	"github.com/rs/zerolog/log"
)

type conversationResponse struct {
	Turns []conversation.Turn `json:"turns"`
}

// HandleConversation returns the full transcript in order
func HandleConversation(chatService chat.Service, w http.ResponseWriter, r *http.Request) {
	turns := chatService.History()
	if turns == nil {
		turns = []conversation.Turn{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(conversationResponse{Turns: turns}); err != nil {
		log.Error().Err(err).Msg("Failed to encode conversation response")
	}
}

// HandleConversationReset clears the transcript, keeping the personality
func HandleConversationReset(chatService chat.Service, w http.ResponseWriter, r *http.Request) {
	chatService.Reset()

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "reset"}); err != nil {
		log.Error().Err(err).Msg("Failed to encode reset response")
	}
}
