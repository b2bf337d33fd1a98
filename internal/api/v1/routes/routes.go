package routes

import (
	"net/http"

	v1handlers "github.com/calliope-ai/calliope/internal/api/v1/handlers"
	ws "github.com/calliope-ai/calliope/internal/api/v1/handlers/websocket"
	v1mware "github.com/calliope-ai/calliope/internal/api/v1/middleware"
	"github.com/calliope-ai/calliope/internal/config"
	"github.com/calliope-ai/calliope/internal/services"
	"github.com/gorilla/mux"
)

func RegisterV1Routes(router *mux.Router, svcs *services.Services) {
	v1 := router.PathPrefix("/v1").Subrouter()

	v1.Handle("/chat", v1mware.RateLimit("chat")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v1handlers.HandleChat(svcs.GetChatService(), svcs.GetPresets(), w, r)
	}))).Methods("POST")

	v1.HandleFunc("/presets", func(w http.ResponseWriter, r *http.Request) {
		v1handlers.HandlePresets(svcs.GetPresets(), w, r)
	}).Methods("GET")

	v1.HandleFunc("/conversation", func(w http.ResponseWriter, r *http.Request) {
		v1handlers.HandleConversation(svcs.GetChatService(), w, r)
	}).Methods("GET")

	v1.HandleFunc("/conversation/reset", func(w http.ResponseWriter, r *http.Request) {
		v1handlers.HandleConversationReset(svcs.GetChatService(), w, r)
	}).Methods("POST")

	router.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ws.HandleChatSocket(svcs.GetChatService(), svcs.GetPresets(), w, r)
	})

	// Static UI shell last so the API paths win
	router.PathPrefix("/").Handler(http.FileServer(http.Dir(config.GetWebDir())))
}
