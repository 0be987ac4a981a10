// Package app provides router configuration.
package app

import (
	"context"

	"github.com/syntriq/cart-service/config"
	"github.com/syntriq/cart-service/internal/http"
	"github.com/syntriq/cart-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var loggingService service.LoggingService
	if dbComponents != nil {
		loggingService = dbComponents.LoggingService
	}

	healthHandler := http.NewHealthHandler()

	// Register database health for the readiness probe
	if dbComponents != nil {
		if dbComponents.CartsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_carts", dbComponents.CartsCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
		if dbComponents.DB != nil {
			db := dbComponents.DB
			healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(func() error {
				return db.HealthCheck(context.Background())
			}))
		}
	}

	// Session endpoints need the user and token repositories; without a
	// database the storefront simply runs sessionless.
	var authService service.AuthService
	if cfg.Auth.Enabled && dbComponents != nil && dbComponents.UserRepo != nil {
		authService = service.NewAuthService(
			dbComponents.UserRepo,
			dbComponents.TokenRepo,
			cfg.Auth,
		)
	}

	routerCfg := http.RouterConfig{
		RateLimit:       cfg.Server.RateLimit,
		RateWindow:      cfg.Server.RateWindow,
		CORSOrigins:     cfg.Server.CORSOrigins,
		SwaggerUser:     cfg.Server.SwaggerUser,
		SwaggerPass:     cfg.Server.SwaggerPass,
		LoggingService:  loggingService,
		AuthService:     authService,
		CheckoutService: services.Checkout,
		CartService:     services.Carts,
		Catalog:         services.Catalog,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
