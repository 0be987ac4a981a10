package http

import (
	"github.com/gin-gonic/gin"

	"github.com/syntriq/cart-service/internal/cart"
	"github.com/syntriq/cart-service/internal/catalog"
	"github.com/syntriq/cart-service/internal/middleware"
	"github.com/syntriq/cart-service/internal/service"
)

// CartRoutes handles storefront route registration: catalog lookups,
// cart mutations, and checkout.
type CartRoutes struct {
	cartHandler     *CartHandler
	catalogHandler  *CatalogHandler
	checkoutHandler *CheckoutHandler
}

// NewCartRoutes creates a new CartRoutes instance.
func NewCartRoutes(carts cart.Service, cat catalog.Service, checkout service.CheckoutService) *CartRoutes {
	var checkoutHandler *CheckoutHandler
	if checkout != nil {
		checkoutHandler = NewCheckoutHandler(checkout)
	}

	return &CartRoutes{
		cartHandler:     NewCartHandler(carts, cat),
		catalogHandler:  NewCatalogHandler(cat),
		checkoutHandler: checkoutHandler,
	}
}

// RegisterRoutes registers the storefront routes. Cart and checkout
// routes carry a cart key and, when auth is configured, an optional
// session; a missing or invalid token never blocks a cart operation.
func (r *CartRoutes) RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig) {
	rg.GET("/catalog", r.catalogHandler.ListProducts)
	rg.GET("/catalog/:id", r.catalogHandler.GetProduct)

	withCart := rg.Group("")
	withCart.Use(middleware.CartID())
	if cfg.AuthService != nil {
		withCart.Use(middleware.OptionalJWT(cfg.AuthService))
	}

	cartGroup := withCart.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/items", r.cartHandler.RemoveItem)
		cartGroup.POST("/discount", r.cartHandler.ApplyDiscount)
		cartGroup.DELETE("/discount", r.cartHandler.RemoveDiscount)
	}

	if r.checkoutHandler != nil {
		withCart.POST("/checkout", r.checkoutHandler.Checkout)
	}
}
