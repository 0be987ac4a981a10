// Package app provides service initialization.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/syntriq/cart-service/config"
	"github.com/syntriq/cart-service/internal/cart"
	"github.com/syntriq/cart-service/internal/catalog"
	"github.com/syntriq/cart-service/internal/repository"
	"github.com/syntriq/cart-service/internal/service"
)

// ServiceComponents holds the storefront business services.
type ServiceComponents struct {
	CartStore repository.CartStore
	Carts     cart.Service
	Catalog   catalog.Service
	Checkout  service.CheckoutService
}

// InitializeServices initializes the cart engine and its collaborators.
// The cart store is MongoDB when database components are available,
// otherwise a file-backed store under the configured data directory.
func InitializeServices(cfg config.StoreConfig, dbComponents *DatabaseComponents) *ServiceComponents {
	var store repository.CartStore
	var loggingService service.LoggingService

	if dbComponents != nil {
		store = dbComponents.CartStore
		loggingService = dbComponents.LoggingService
	} else {
		fileStore, err := repository.NewFileCartStore(cfg.Dir, cfg.Prefix)
		if err != nil {
			log.Fatal().Err(err).Str("dir", cfg.Dir).Msg("Failed to create cart store directory")
		}
		store = fileStore
		log.Info().Str("dir", cfg.Dir).Msg("Using file-backed cart store")
	}

	carts := cart.NewService(store)

	return &ServiceComponents{
		CartStore: store,
		Carts:     carts,
		Catalog:   catalog.NewDefaultCatalog(),
		Checkout:  service.NewCheckoutService(carts, loggingService),
	}
}
