package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/syntriq/cart-service/internal/domain/dto"
	"github.com/syntriq/cart-service/internal/i18n"
	"github.com/syntriq/cart-service/internal/logger"
)

// ErrorHandler returns a middleware that logs errors attached to the
// gin context after the handler ran, and emits the standard error
// envelope when no response was written.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()
			requestID := GetRequestID(c)
			locale := i18n.GetLocale(c)

			log := logger.Logger()
			event := log.Error().
				Str("request_id", requestID).
				Str("error", err.Error()).
				Str("path", c.Request.URL.Path).
				Str("method", c.Request.Method)
			if cartID := GetCartID(c); cartID != "" {
				event = event.Str("cart_id", cartID)
			}
			event.Msg("Request error")

			if !c.Writer.Written() {
				message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, locale)
				errorResp := dto.NewError(dto.ErrCodeInternal, message).
					WithRequestID(requestID)
				c.JSON(http.StatusInternalServerError, errorResp)
			}
		}
	}
}
