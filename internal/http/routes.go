package http

import (
	"github.com/gin-gonic/gin"
)

// RouteGroup is a set of routes registered as one unit. The storefront
// routes (catalog, cart, checkout) form one group.
type RouteGroup interface {
	RegisterRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}

// PublicRouteGroup registers routes reachable without a session.
type PublicRouteGroup interface {
	RegisterPublicRoutes(rg *gin.RouterGroup)
}

// ProtectedRouteGroup registers routes that require a valid session.
type ProtectedRouteGroup interface {
	RegisterProtectedRoutes(rg *gin.RouterGroup, cfg *RouterConfig)
}
