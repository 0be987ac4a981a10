package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/syntriq/cart-service/internal/domain/dto"
	"github.com/syntriq/cart-service/internal/logger"
)

// Recovery returns a middleware that recovers from panics and returns a 500 error.
// It logs the panic with the request ID and, when present, the cart key
// so a crashing mutation can be traced back to the affected cart.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				requestID := GetRequestID(c)
				log := logger.Logger()
				event := log.Error().
					Str("request_id", requestID).
					Interface("panic", err)
				if cartID := GetCartID(c); cartID != "" {
					event = event.Str("cart_id", cartID)
				}
				event.Msg("PANIC recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Error:   dto.ErrCodeInternal,
					Message: "An unexpected error occurred",
				})
			}
		}()
		c.Next()
	}
}
