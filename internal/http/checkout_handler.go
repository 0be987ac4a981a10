package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/syntriq/cart-service/internal/domain/dto"
	"github.com/syntriq/cart-service/internal/i18n"
	"github.com/syntriq/cart-service/internal/metrics"
	"github.com/syntriq/cart-service/internal/middleware"
	"github.com/syntriq/cart-service/internal/service"
)

// CheckoutHandler provides the HTTP handler for placing orders.
type CheckoutHandler struct {
	checkout service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(checkout service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// Checkout handles POST /api/checkout requests.
//
// @Summary      Place order
// @Description  Captures the current cart as an order, returns the generated confirmation number, and clears the cart.
// @Tags         Checkout
// @Accept       json
// @Produce      json
// @Param        X-Cart-ID header string false "Cart identifier"
// @Param        request body dto.CheckoutRequest true "Buyer contact details"
// @Success      201 {object} dto.SuccessResponse{data=dto.CheckoutResponse} "Order confirmation"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input or empty cart"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CheckoutRequest](c)
	if err != nil {
		bindError(builder, err)
		return
	}

	confirmation, err := h.checkout.Checkout(c.Request.Context(), middleware.GetCartID(c), req.Email, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCart) {
			metrics.RecordCheckout("empty_cart", 0)
			builder.Error(http.StatusBadRequest, i18n.ErrKeyEmptyCart, err)
			return
		}
		metrics.RecordCheckout("error", 0)
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	metrics.RecordCheckout("success", confirmation.Total)
	builder.SuccessCreated(confirmation)
}
