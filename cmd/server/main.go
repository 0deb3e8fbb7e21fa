package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/huefit/backend/config"
	httpDelivery "github.com/huefit/backend/internal/delivery/http"
	"github.com/huefit/backend/internal/infrastructure/cache"
	"github.com/huefit/backend/internal/infrastructure/scoring"
	"github.com/huefit/backend/internal/infrastructure/store"
	"github.com/huefit/backend/internal/retailer"
	"github.com/huefit/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := buildLogger(cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting huefit backend",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port))

	// Persistence for retailer configuration and credentials
	retailerStore := store.NewRetailerFile(cfg.Store.RetailersPath)
	credentialStore := store.NewCredentialFile(cfg.Store.CredentialsPath)

	catalog, err := usecase.NewCatalogService(retailerStore, credentialStore, logger)
	if err != nil {
		logger.Fatal("failed to initialize retailer catalog", zap.Error(err))
	}

	// Shared retailer HTTP client and adapter registry
	retailClient := retailer.NewClient(cfg.Retail.Timeout, logger)
	registry := retailer.NewRegistry(retailClient, logger)

	resultCache := cache.NewMemoryCache()
	defer resultCache.Close()

	aggregation := usecase.NewAggregationService(catalog, registry, resultCache, cfg.Cache.TTL, logger)

	// Remote scoring is optional; without it the local rule engine carries
	// all scoring.
	var scorer *usecase.CompatibilityService
	if cfg.Scoring.Enabled {
		remote := scoring.NewClient(cfg.Scoring.BaseURL, cfg.Scoring.Timeout, logger)
		scorer = usecase.NewCompatibilityService(remote, logger)
		logger.Info("remote scoring enabled", zap.String("base_url", cfg.Scoring.BaseURL))
	} else {
		scorer = usecase.NewCompatibilityService(nil, logger)
		logger.Info("remote scoring disabled, using local rules only")
	}

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(catalog, aggregation, scorer)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler, logger)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info("server listening", zap.String("addr", addr))

	if err := router.Run(addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func buildLogger(environment string) (*zap.Logger, error) {
	if environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
