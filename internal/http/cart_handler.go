package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/syntriq/cart-service/internal/cart"
	"github.com/syntriq/cart-service/internal/catalog"
	"github.com/syntriq/cart-service/internal/domain/dto"
	"github.com/syntriq/cart-service/internal/domain/model"
	"github.com/syntriq/cart-service/internal/i18n"
	"github.com/syntriq/cart-service/internal/metrics"
	"github.com/syntriq/cart-service/internal/middleware"
	"github.com/syntriq/cart-service/internal/service"
)

// CartHandler provides HTTP handlers for cart operations. Products and
// variants are resolved against the catalog at this boundary; the cart
// engine only ever sees resolved values.
type CartHandler struct {
	carts   cart.Service
	catalog catalog.Service
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(carts cart.Service, cat catalog.Service) *CartHandler {
	return &CartHandler{
		carts:   carts,
		catalog: cat,
	}
}

// toCartResponse converts an engine snapshot to the API view.
func toCartResponse(snap cart.Snapshot) dto.CartResponse {
	return dto.CartResponse{
		CartID:    snap.CartID,
		Items:     snap.Items,
		Discount:  snap.Discount,
		Breakdown: snap.Breakdown,
	}
}

// loggingFromContext returns the logging service injected by the
// router, or nil when audit logging is disabled.
func loggingFromContext(c *gin.Context) service.LoggingService {
	if v, exists := c.Get("logging_service"); exists {
		if ls, ok := v.(service.LoggingService); ok {
			return ls
		}
	}
	return nil
}

// bindError translates a bind or validation failure into the standard
// error response.
func bindError(builder *ResponseBuilder, err error) {
	if validationErr, ok := err.(*dto.ValidationError); ok {
		builder.ErrorWithMessage(http.StatusBadRequest, validationErr.Error(), err)
		return
	}
	builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
}

// GetCart handles GET /api/cart requests.
//
// @Summary      Get cart
// @Description  Returns the current cart state and pricing breakdown for the cart identified by the X-Cart-ID header. A new empty cart is created when the header is absent.
// @Tags         Cart
// @Produce      json
// @Param        X-Cart-ID header string false "Cart identifier"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Current cart state"
// @Router       /api/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	builder := NewResponseBuilder(c)
	snap := h.carts.Get(c.Request.Context(), middleware.GetCartID(c))
	builder.SuccessOK(toCartResponse(snap))
}

// AddItem handles POST /api/cart/items requests.
//
// @Summary      Add item to cart
// @Description  Adds a product (optionally a specific variant) to the cart. Adding the same product+variant again increments the existing line item's quantity.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Cart-ID header string false "Cart identifier"
// @Param        request body dto.AddItemRequest true "Item to add"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Cart state after the add"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Unknown product or variant"
// @Router       /api/cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.AddItemRequest](c)
	if err != nil {
		bindError(builder, err)
		return
	}

	product := h.catalog.ProductByID(req.ProductID)
	if product == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyProductNotFound, nil)
		return
	}

	var variant *model.Variant
	if req.Variant != "" {
		if variant = product.Variant(req.Variant); variant == nil {
			builder.Error(http.StatusNotFound, i18n.ErrKeyVariantNotFound, nil)
			return
		}
	}

	snap := h.carts.AddItem(c.Request.Context(), middleware.GetCartID(c), *product, variant, req.Quantity)

	metrics.RecordCartMutation("add_item")
	middleware.AuditLog(loggingFromContext(c), c, "add_item", "Item added to cart", map[string]interface{}{
		"product_id": req.ProductID,
		"variant":    req.Variant,
		"quantity":   req.Quantity,
	})

	builder.SuccessOK(toCartResponse(snap))
}

// UpdateQuantity handles PATCH /api/cart/items requests.
//
// @Summary      Update line item quantity
// @Description  Sets the quantity of a line item. A quantity of zero or less removes the item. Updating an item that is not in the cart is a no-op.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Cart-ID header string false "Cart identifier"
// @Param        request body dto.UpdateQuantityRequest true "New quantity"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Cart state after the update"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Router       /api/cart/items [patch]
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.UpdateQuantityRequest](c)
	if err != nil {
		bindError(builder, err)
		return
	}

	key := model.ItemKey{ProductID: req.ProductID, VariantName: req.Variant}
	snap := h.carts.UpdateQuantity(c.Request.Context(), middleware.GetCartID(c), key, req.Quantity)

	metrics.RecordCartMutation("update_quantity")
	middleware.AuditLog(loggingFromContext(c), c, "update_quantity", "Line item quantity updated", map[string]interface{}{
		"product_id": req.ProductID,
		"variant":    req.Variant,
		"quantity":   req.Quantity,
	})

	builder.SuccessOK(toCartResponse(snap))
}

// RemoveItem handles DELETE /api/cart/items requests.
//
// @Summary      Remove item from cart
// @Description  Removes a line item from the cart. Removing an item that is not in the cart is a no-op.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Cart-ID header string false "Cart identifier"
// @Param        request body dto.RemoveItemRequest true "Item to remove"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Cart state after the removal"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Router       /api/cart/items [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.RemoveItemRequest](c)
	if err != nil {
		bindError(builder, err)
		return
	}

	key := model.ItemKey{ProductID: req.ProductID, VariantName: req.Variant}
	snap := h.carts.RemoveItem(c.Request.Context(), middleware.GetCartID(c), key)

	metrics.RecordCartMutation("remove_item")
	middleware.AuditLog(loggingFromContext(c), c, "remove_item", "Item removed from cart", map[string]interface{}{
		"product_id": req.ProductID,
		"variant":    req.Variant,
	})

	builder.SuccessOK(toCartResponse(snap))
}

// ClearCart handles DELETE /api/cart requests.
//
// @Summary      Clear cart
// @Description  Empties the cart and drops any active discount.
// @Tags         Cart
// @Produce      json
// @Param        X-Cart-ID header string false "Cart identifier"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Empty cart state"
// @Router       /api/cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	builder := NewResponseBuilder(c)

	snap := h.carts.Clear(c.Request.Context(), middleware.GetCartID(c))

	metrics.RecordCartMutation("clear_cart")
	middleware.AuditLog(loggingFromContext(c), c, "clear_cart", "Cart cleared", nil)

	builder.SuccessOK(toCartResponse(snap))
}

// ApplyDiscount handles POST /api/cart/discount requests.
//
// @Summary      Apply discount code
// @Description  Applies a discount code to the cart. Codes are matched case-insensitively. An unknown code is not an error; the response reports valid=false and the cart keeps its previous discount, if any.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Cart-ID header string false "Cart identifier"
// @Param        request body dto.ApplyDiscountRequest true "Discount code"
// @Success      200 {object} dto.SuccessResponse{data=dto.DiscountResponse} "Application outcome and cart state"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Router       /api/cart/discount [post]
func (h *CartHandler) ApplyDiscount(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.ApplyDiscountRequest](c)
	if err != nil {
		bindError(builder, err)
		return
	}

	snap, valid := h.carts.ApplyDiscount(c.Request.Context(), middleware.GetCartID(c), req.Code)

	metrics.RecordCartMutation("apply_discount")
	metrics.RecordDiscountApplication(valid)
	middleware.AuditLog(loggingFromContext(c), c, "apply_discount", "Discount code applied", map[string]interface{}{
		"code":  req.Code,
		"valid": valid,
	})

	builder.SuccessOK(dto.DiscountResponse{
		Valid: valid,
		Cart:  toCartResponse(snap),
	})
}

// RemoveDiscount handles DELETE /api/cart/discount requests.
//
// @Summary      Remove discount
// @Description  Clears the active discount from the cart. Removing when no discount is active is a no-op.
// @Tags         Cart
// @Produce      json
// @Param        X-Cart-ID header string false "Cart identifier"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Cart state without a discount"
// @Router       /api/cart/discount [delete]
func (h *CartHandler) RemoveDiscount(c *gin.Context) {
	builder := NewResponseBuilder(c)

	snap := h.carts.RemoveDiscount(c.Request.Context(), middleware.GetCartID(c))

	metrics.RecordCartMutation("remove_discount")
	middleware.AuditLog(loggingFromContext(c), c, "remove_discount", "Discount removed from cart", nil)

	builder.SuccessOK(toCartResponse(snap))
}
