// Package i18n provides internationalization support for the cart service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyInvalidCredentials indicates invalid login credentials.
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyProductNotFound indicates an unknown catalog product.
	ErrKeyProductNotFound = "error.product_not_found"
	// ErrKeyVariantNotFound indicates an unknown product variant.
	ErrKeyVariantNotFound = "error.variant_not_found"
	// ErrKeyInvalidDiscount indicates an unknown discount code.
	ErrKeyInvalidDiscount = "error.invalid_discount"
	// ErrKeyEmptyCart indicates a checkout attempt on an empty cart.
	ErrKeyEmptyCart = "error.empty_cart"
)

// Success message translation keys.
const (
	// SuccessKeyItemAdded indicates an item was added to the cart.
	SuccessKeyItemAdded = "success.item_added"
	// SuccessKeyDiscountApplied indicates a discount code was accepted.
	SuccessKeyDiscountApplied = "success.discount_applied"
	// SuccessKeyOrderPlaced indicates a successful checkout.
	SuccessKeyOrderPlaced = "success.order_placed"
)
