package main

import (
	"fmt"
	"log"
	"os"

	"github.com/buynary/backend/config"
	httpDelivery "github.com/buynary/backend/internal/delivery/http"
	"github.com/buynary/backend/internal/infrastructure/catalog"
	"github.com/buynary/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Buynary Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Load the catalog snapshot: a configured YAML file, or the built-in
	// seed catalog when no file is given
	var store *catalog.Memory
	if cfg.Catalog.Path != "" {
		store, err = catalog.LoadFile(cfg.Catalog.Path)
		if err != nil {
			log.Fatalf("Failed to load catalog %s: %v", cfg.Catalog.Path, err)
		}
		log.Printf("Catalog: %s (%d products)", cfg.Catalog.Path, store.Size())
	} else {
		store = catalog.Seed()
		log.Printf("Catalog: built-in seed (%d products)", store.Size())
	}

	// Initialize usecase layer
	parser := usecase.NewTranscriptParser(usecase.ParserConfig{
		EnableDebugLogging: cfg.Pipeline.EnableDebugLogging,
	})
	comparison := usecase.NewComparisonService(usecase.ComparisonConfig{
		EnableDebugLogging: cfg.Pipeline.EnableDebugLogging,
	})

	if cfg.Pipeline.EnableDebugLogging {
		log.Printf("Pipeline debug logging enabled")
	}
	log.Printf("Rate limit: %d requests/minute per IP", cfg.RateLimit.PerIP)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(store, parser, comparison)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
