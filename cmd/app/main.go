package main

import (
	"flag"
	"log"
	"os"

	"SynthTick/internal/di"
	"SynthTick/pkg/config"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "config/config.yaml", "config file path")
	flag.Parse()

	// Load config
	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	log.Printf("env=%s tickers=%d days=%d seed=%d", cfg.Environment, len(cfg.Market.Tickers), cfg.Market.Days, cfg.Market.Seed)

	// Wire DI: generate the table and initialize all dependencies
	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	// Run application (blocks until signal)
	if err := app.Run(); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}
