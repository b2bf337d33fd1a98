package main

import (
	"net/http"
	"os"

	"github.com/calliope-ai/calliope/internal/api/v1/routes"
	"github.com/calliope-ai/calliope/internal/config"
	"github.com/calliope-ai/calliope/internal/services"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Optional .env for local development
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("Failed to load .env file")
	}

	svcs, err := services.InitializeServices()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize services")
	}

	router := setupRouter(svcs)

	addr := config.GetListenAddr()
	log.Info().Str("addr", addr).Msg("Server starting")
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal().Err(err).Msg("ListenAndServe error")
	}
}

func setupRouter(svcs *services.Services) *mux.Router {
	r := mux.NewRouter()
	routes.RegisterV1Routes(r, svcs)
	return r
}
