package main

import (
	"os"

	"github.com/skillpoint/institute-backend/internal/pkg/logger"
	"github.com/skillpoint/institute-backend/internal/server"
)

// @title SkillPoint Institute API
// @version 1.0
// @description Administrative backend for a training institute: student admissions, course catalog, fee ledger and certificate verification

// @contact.name API Support
// @contact.email support@skillpoint.example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http https

func main() {
	// NewServer orchestrates config loading, logger setup, database
	// connection, migrations and dependency wiring.
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
