// Package main is the entry point for the cart-service application.
//
// @title           SYNTRIQ Cart Service API
// @version         1.0.0
// @description     Cart pricing and discount engine for the SYNTRIQ storefront.
//
//	Carts are identified by the X-Cart-ID header; every response echoes the
//	key back so the storefront can persist it. Sessions are optional and
//	never gate cart operations.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@syntriq.example
// @contact.url    https://github.com/syntriq/cart-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT access token, prefixed with "Bearer ".
//
// @tag.name        Cart
// @tag.description Cart line item and discount operations
//
// @tag.name        Catalog
// @tag.description Read-only product catalog
//
// @tag.name        Checkout
// @tag.description Order placement
//
// @tag.name        Auth
// @tag.description Authentication endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/syntriq/cart-service/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/syntriq/cart-service/config"
	"github.com/syntriq/cart-service/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
