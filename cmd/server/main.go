package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"agelookup/internal/config"
	"agelookup/internal/dataset"
	"agelookup/internal/predictor"
	"agelookup/internal/resolver"
	"agelookup/internal/server"
	"agelookup/internal/tracker"
)

func main() {
	cfg := config.Load()

	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}
	if err := yamlCfg.Apply(cfg); err != nil {
		log.Fatalf("Invalid config file: %v", err)
	}

	// Local dataset
	ds := dataset.New(cfg.DatasetPath)
	if err := ds.Check(); err != nil {
		log.Printf("Warning: dataset %s is not readable, all lookups will use the predictor: %v", cfg.DatasetPath, err)
	}

	// Remote predictor
	client, err := predictor.New(cfg.PredictorURL, cfg.PredictorTimeout)
	if err != nil {
		log.Fatalf("Failed to configure predictor: %v", err)
	}

	counts := tracker.New()
	ageResolver := resolver.New(ds, client, counts)

	srv := server.New(cfg)
	srv.RegisterRoutes(ds, ageResolver, counts)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s (dataset: %s, predictor: %s)", cfg.ServerAddr, cfg.DatasetPath, cfg.PredictorURL)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
