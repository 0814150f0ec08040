package main

import (
	"os"

	"github.com/srkad/placement-portal/internal/pkg/logger"
	"github.com/srkad/placement-portal/internal/server"
)

// @title Placement Portal API
// @version 1.0
// @description CRUD API for student placement registration, search and company listings

// @host localhost:8080
// @BasePath /api

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
