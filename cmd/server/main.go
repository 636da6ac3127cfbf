package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"retreivo-backend/internal/advisory"
	httpapi "retreivo-backend/internal/api/http"
	"retreivo-backend/internal/config"
	"retreivo-backend/internal/logger"
	"retreivo-backend/internal/repository/postgres"
	"retreivo-backend/internal/security"
	"retreivo-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load .env if present, then configuration
	_ = godotenv.Load()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Retreivo backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Advisory configuration", "base_url", cfg.Advisory.BaseURL, "timeout_seconds", cfg.Advisory.TimeoutSeconds)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Hour)

	// Initialize Match Advisory client
	advisoryTimeout := time.Duration(cfg.Advisory.TimeoutSeconds) * time.Second
	advisoryClient := advisory.NewClient(cfg.Advisory.BaseURL, advisoryTimeout)

	// Initialize Services
	authSvc := service.NewAuthService(store.Users, tokenManager)
	itemSvc := service.NewItemService(store.Items, advisoryClient, advisoryTimeout)
	claimSvc := service.NewClaimService(store, store.Claims, cfg.Rewards.ClaimApprovalAmount)
	rewardSvc := service.NewRewardService(store.Rewards, store.Users)
	searchSvc := service.NewSearchService(store.Items, advisoryClient)

	// Initialize HTTP handlers and router
	router := httpapi.NewRouter(httpapi.Handlers{
		Auth:   httpapi.NewAuthHandler(authSvc),
		Item:   httpapi.NewItemHandler(itemSvc),
		Claim:  httpapi.NewClaimHandler(claimSvc),
		Reward: httpapi.NewRewardHandler(rewardSvc),
		Search: httpapi.NewSearchHandler(searchSvc),
	}, tokenManager, store)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
