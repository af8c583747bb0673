package main

import (
	"os"

	"github.com/akshayp/cetadvisor/internal/pkg/logger"
	"github.com/akshayp/cetadvisor/internal/server"
)

// @title MHT CET Advisor API
// @version 1.0
// @description Admissions guidance backend for MHT CET aspirants: updates feed, cutoff explorer, college predictor, guide downloads and consultation bookings.

// @contact.name API Support
// @contact.email support@mhtcetadvisor.in

// @host localhost:8080
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for admin endpoints

func main() {
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
