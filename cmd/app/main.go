package main

import (
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/nmartinez-uy/flightdesk/config"
	"github.com/nmartinez-uy/flightdesk/internal/cli"
	"github.com/nmartinez-uy/flightdesk/internal/service/airport"
	"github.com/nmartinez-uy/flightdesk/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zl, err := logger.New(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	zl = zl.With("app", cfg.App.Name, "session_id", uuid.NewString())

	svc := airport.NewAirportService(airport.WithLogger(zl))

	for _, seed := range cfg.Seed.Airlines {
		if _, err := svc.RegisterAirline(airport.RegisterAirlineInput{
			Code:    seed.Code,
			Name:    seed.Name,
			Country: seed.Country,
		}); err != nil {
			zl.Warn("skipping seed airline", "code", seed.Code, "error", err)
		}
	}

	if err := cli.New(svc, os.Stdin, os.Stdout).Run(); err != nil {
		zl.Error("cli terminated", "error", err)
		os.Exit(1)
	}
}
