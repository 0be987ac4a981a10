package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// CartIDHeader is the HTTP header carrying the client's cart key.
	// The browser generates one per tab and sends it on every cart
	// request; a missing header gets a fresh key assigned.
	CartIDHeader = "X-Cart-ID"

	// CartIDKey is the context key for the cart key.
	CartIDKey ContextKey = "cart_id"
)

// CartID returns a middleware that resolves the cart key for the
// request. The key is echoed back so first-time clients can persist
// the one they were assigned.
func CartID() gin.HandlerFunc {
	return func(c *gin.Context) {
		cartID := c.GetHeader(CartIDHeader)
		if cartID == "" {
			cartID = uuid.New().String()
		}

		c.Set(string(CartIDKey), cartID)
		c.Header(CartIDHeader, cartID)
		c.Next()
	}
}

// GetCartID retrieves the cart key from the gin context.
func GetCartID(c *gin.Context) string {
	if id, exists := c.Get(string(CartIDKey)); exists {
		if cartID, ok := id.(string); ok {
			return cartID
		}
	}
	return ""
}
