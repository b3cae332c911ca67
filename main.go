package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"travel-mate/backend/internal/config"
	configapp "travel-mate/backend/internal/features/config/application"
	"travel-mate/backend/internal/features/portrait/application"
	"travel-mate/backend/internal/features/portrait/infrastructure"
	"travel-mate/backend/internal/logging"
	"travel-mate/backend/internal/server"
)

func main() {
	// Load ../.env file
	path, envErr := config.LoadEnvFile()
	logging.Setup(os.Stderr, os.Getenv("GIN_MODE") != "release")
	if envErr != nil {
		slog.Warn("No .env file found, using environment variables", "path", path)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if !cfg.HasAPIKey() {
		slog.Warn("No image provider key set; /generate-image will answer 500", "keys", []string{config.EnvAPIKey, config.EnvAPIKeyFallback})
	}

	translator, err := infrastructure.NewTranslator(context.Background(), infrastructure.NewTranslatorConfig(cfg))
	if err != nil {
		log.Fatalf("Failed to create translator: %v", err)
	}
	stabilityClient := infrastructure.NewStabilityClient(cfg.StabilityURL, nil)

	// Initialize services
	portraitService := application.NewPortraitService(application.NewServiceConfig(cfg), translator, stabilityClient)
	configService := configapp.NewConfigService(cfg)

	s := server.NewServer(cfg, portraitService, configService)
	slog.Info("Starting server", "port", cfg.Port, "translator", translator.Name())
	if err := s.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
