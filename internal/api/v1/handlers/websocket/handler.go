// Package websocket carries whole-turn chat frames for the UI shell. Each
// request frame yields exactly one reply frame; replies are atomic strings,
// there is no token streaming.
package websocket

import (
	"net/http"

	v1handlers "github.com/calliope-ai/calliope/internal/api/v1/handlers"
	"github.com/calliope-ai/calliope/internal/services/chat"
	"github.com/calliope-ai/calliope/internal/services/persona"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Local single-user tool; the REST surface carries no auth either
		return true
	},
}

type errorFrame struct {
	Error string `json:"error"`
}

// HandleChatSocket upgrades the connection and serves one turn per frame
// until the client goes away.
func HandleChatSocket(chatService chat.Service, presets *persona.Presets, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	log.Info().Str("client_ip", r.RemoteAddr).Msg("Chat socket connected")

	for {
		var req v1handlers.ChatRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Msg("Unexpected chat socket closure")
			}
			return
		}

		if req.Message == "" {
			if err := conn.WriteJSON(errorFrame{Error: "message is required"}); err != nil {
				return
			}
			continue
		}

		profile, err := v1handlers.ResolveProfile(&req, presets)
		if err != nil {
			if err := conn.WriteJSON(errorFrame{Error: err.Error()}); err != nil {
				return
			}
			continue
		}

		resp, err := chatService.ProcessTurn(r.Context(), profile, req.Message)
		if err != nil {
			log.Error().Err(err).Msg("Failed to process chat turn over socket")
			if err := conn.WriteJSON(errorFrame{Error: "failed to process turn"}); err != nil {
				return
			}
			continue
		}

		if err := conn.WriteJSON(resp); err != nil {
			log.Warn().Err(err).Msg("Failed to write chat socket reply")
			return
		}
	}
}
