package main

import (
	"os"

	"github.com/yigit/courseapproval/internal/pkg/logger"
	"github.com/yigit/courseapproval/internal/server"
)

// @title Course Approval API
// @version 1.0
// @description Lists courses and records approve/reject decisions for courses and their students.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /
// @schemes http

func main() {
	// NewServer orchestrates LoadConfigAndSetupLogger, SetupDatabase, BuildDependencies, SetupRouter
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
