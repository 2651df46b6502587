// main.go
package main

import (
	"log"

	"movie-browser/cmd"
	"movie-browser/internal/data/repository"
	"movie-browser/internal/wire"
	"movie-browser/pkg/httpclient"
	"movie-browser/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("trailer_strategy", config.Trailer.Strategy),
	)

	if config.TMDB.APIKey == "" {
		logger.Warn("TMDB_API_KEY is not set; metadata requests will fail and return empty results")
	}

	// Shared outbound client
	httpc, err := httpclient.NewClient(config.HTTP, logger)
	if err != nil {
		logger.Fatal("Failed to create HTTP client", zap.Error(err))
	}

	// Initialize all repositories
	repos := repository.NewRepository(httpc, config, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)
	defer app.Close()

	// Start server
	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
}
