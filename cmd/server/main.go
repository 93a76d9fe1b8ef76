package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/talentscout/talentscout/internal/config"
	"github.com/talentscout/talentscout/internal/logger"
	"github.com/talentscout/talentscout/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(os.Getenv("LOG_JSON") == "true", os.Getenv("LOG_DEBUG") == "true")
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zl.Sync()

	srv, err := server.NewServer(context.Background(), cfg, zl)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	r := srv.SetupRouter()

	log.Printf("Starting server on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
