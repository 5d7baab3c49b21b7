package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/bonhokoo-eng/ci-generator/cmd"
	"github.com/bonhokoo-eng/ci-generator/internal/config"
	"github.com/bonhokoo-eng/ci-generator/internal/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Warning: Could not load configuration: %v", err)
		if err := logger.Setup(logger.DefaultConfig()); err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
	} else {
		if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
	}

	log := logger.WithComponent("main")
	log.Debug().Msg("Starting cigen")

	cmd.Execute()

	os.Exit(0)
}
