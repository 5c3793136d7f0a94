package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	"labor-planner/internal/api"
	"labor-planner/internal/config"
)

// @title Labor Planner API
// @version 1.0
// @description Headcount planning for warehouse inbound and outbound processes.
// @host localhost:8080
// @BasePath /
func main() {
	configPath := flag.String("config", "laborplan.yaml", "path to the YAML configuration file")
	flag.Parse()

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Init DB, register routes and serve
	if err := api.Serve(ctx, cfg); err != nil {
		log.Fatalf("❌ Server error: %v", err)
	}
}
