// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/syntriq/cart-service/config"
	"github.com/syntriq/cart-service/internal/circuitbreaker"
	"github.com/syntriq/cart-service/internal/repository"
	"github.com/syntriq/cart-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                  *repository.MongoDB
	CartStore           repository.CartStore
	LoggingService      service.LoggingService
	CartsCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker  *circuitbreaker.CircuitBreaker
	UserRepo            repository.UserRepositoryInterface
	TokenRepo           repository.TokenRepositoryInterface
}

// InitializeDatabase initializes the MongoDB connection and creates the
// cart store, repositories, and services on top of it.
// Returns nil if the database is disabled or the connection fails; the
// service then falls back to the file-backed cart store.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Abandoned carts and old logs expire via TTL indexes.
	if err := db.SetCartsTTL(context.Background(), int(cfg.CartsTTL.Hours()/24)); err != nil {
		log.Warn().Err(err).Msg("Failed to set carts TTL index (may already exist)")
	}
	if err := db.SetLogsTTL(context.Background(), int(cfg.LogsTTL.Hours()/24)); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	cartsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-carts",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	cartStore := repository.NewCartStoreWithCircuitBreaker(repository.NewMongoCartStore(db), cartsCB)

	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	userRepo := repository.NewUserRepository(db.Database)
	tokenRepo := repository.NewTokenRepository(db.Database)

	return &DatabaseComponents{
		DB:                  db,
		CartStore:           cartStore,
		LoggingService:      loggingService,
		CartsCircuitBreaker: cartsCB,
		LogsCircuitBreaker:  logsCB,
		UserRepo:            userRepo,
		TokenRepo:           tokenRepo,
	}
}
