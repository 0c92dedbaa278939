package main

import (
	"fmt"
	"log"
	"os"

	"github.com/glowpage/backend/config"
	httpDelivery "github.com/glowpage/backend/internal/delivery/http"
	"github.com/glowpage/backend/internal/infrastructure/cache"
	"github.com/glowpage/backend/internal/infrastructure/rewriter"
	"github.com/glowpage/backend/internal/usecase"
)

func main() {
	// Load configuration. An invalid threshold is a deployment mistake and
	// aborts startup; everything else degrades at runtime.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting GlowPage Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	pageCache := cache.NewMemoryCache()
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	rw := rewriter.New(rewriter.Config{
		Enabled:           cfg.Rewriter.Enabled,
		BaseURL:           cfg.Rewriter.BaseURL,
		Model:             cfg.Rewriter.Model,
		Timeout:           cfg.Rewriter.Timeout,
		RequestsPerMinute: cfg.Rewriter.RequestsPerMinute,
	})
	if cfg.Rewriter.Enabled {
		log.Printf("Rewriter enabled: %s (model: %s, timeout: %s)",
			cfg.Rewriter.BaseURL, cfg.Rewriter.Model, cfg.Rewriter.Timeout)
		if ollama, ok := rw.(*rewriter.OllamaClient); ok && cfg.Server.Environment == "development" {
			ollama.SetDebug(true)
			log.Printf("Rewriter debug mode enabled")
		}
	} else {
		log.Printf("Rewriter disabled: FAQ answers are deterministic drafts")
	}

	// Initialize usecase layer
	comparisonService := usecase.NewComparisonService(usecase.RecommendationConfig{
		HighSimilarity:       cfg.Comparison.HighSimilarity,
		LowSimilarity:        cfg.Comparison.LowSimilarity,
		UniqueMargin:         cfg.Comparison.UniqueMargin,
		ModestPremiumPercent: cfg.Comparison.ModestPremiumPercent,
	})

	validator := usecase.NewGroundingValidator(usecase.GroundingValidatorConfig{
		LengthMultiplier: cfg.Validation.LengthMultiplier,
		LengthFloor:      cfg.Validation.LengthFloor,
	})

	coordinator := usecase.NewRewriteCoordinator(rw, validator, cfg.Rewriter.Timeout)

	pageService := usecase.NewPageService(
		pageCache,
		comparisonService,
		coordinator,
		usecase.PageServiceConfig{CacheTTL: cfg.Cache.TTL},
	)

	log.Printf("Comparison: high=%.2f low=%.2f margin=%d premium=%.0f%%",
		cfg.Comparison.HighSimilarity,
		cfg.Comparison.LowSimilarity,
		cfg.Comparison.UniqueMargin,
		cfg.Comparison.ModestPremiumPercent)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(usecase.NewRecordParser(), pageService)

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
