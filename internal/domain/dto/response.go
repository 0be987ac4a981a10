package dto

import (
	"net/http"
	"time"

	"github.com/syntriq/cart-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data (CartResponse for cart endpoints)
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"product_id: is required"`
	// Details contains additional error details (optional)
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-01-28T10:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// CartResponse is the cart view returned by every cart endpoint: the
// line items, the active discount, and the derived breakdown.
// @Description Current cart state with derived pricing breakdown
type CartResponse struct {
	// CartID is the cart key the state belongs to.
	CartID string `json:"cart_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Items is the ordered line item collection.
	Items []model.LineItem `json:"items"`
	// Discount is the active discount policy, if any.
	Discount *model.DiscountPolicy `json:"discount,omitempty"`
	// Breakdown is the derived pricing summary.
	Breakdown model.CartBreakdown `json:"breakdown"`
} // @name CartResponse

// DiscountResponse reports the outcome of a discount application.
// @Description Result of applying a discount code
type DiscountResponse struct {
	// Valid is false when the code is not in the registry.
	Valid bool `json:"valid" example:"true"`
	// Cart is the cart state after the attempt.
	Cart CartResponse `json:"cart"`
} // @name DiscountResponse

// CheckoutResponse confirms a placed order.
// @Description Order confirmation
type CheckoutResponse struct {
	// OrderNumber is the generated confirmation number.
	OrderNumber string `json:"order_number" example:"SYN-847291"`
	// Total is the charged total at checkout time.
	Total float64 `json:"total" example:"1580"`
	// ItemCount is the number of units in the order.
	ItemCount int `json:"item_count" example:"1"`
} // @name CheckoutResponse
