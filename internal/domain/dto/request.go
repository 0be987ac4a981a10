// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs are used to decouple the HTTP layer from the domain model,
// providing validation and serialization for API communication.
package dto

// AddItemRequest represents the JSON request body for adding an item
// to the cart.
//
// Quantity is optional and defaults to 1. Variant is optional; when
// set it must name a variant of the product.
//
// @Description Request to add a product (optionally a variant) to the cart
// @Example {"product_id": "3d-printers", "variant": "Professional", "quantity": 2}
type AddItemRequest struct {
	// ProductID is the catalog id of the product to add.
	ProductID string `json:"product_id" binding:"required" example:"3d-printers"`
	// Variant is the name of the selected variant, if any.
	Variant string `json:"variant,omitempty" example:"Professional"`
	// Quantity is the number of units to add. Defaults to 1.
	Quantity int `json:"quantity,omitempty" example:"2"`
} // @name AddItemRequest

// UpdateQuantityRequest represents the JSON request body for setting a
// line item's quantity.
//
// A quantity of zero or less removes the item; the operation is
// idempotent.
//
// @Description Request to set the quantity of a cart line item
// @Example {"product_id": "3d-printers", "variant": "Professional", "quantity": 3}
type UpdateQuantityRequest struct {
	// ProductID is the catalog id of the product.
	ProductID string `json:"product_id" binding:"required" example:"3d-printers"`
	// Variant is the name of the selected variant, if any.
	Variant string `json:"variant,omitempty" example:"Professional"`
	// Quantity is the new quantity. Zero or negative removes the item.
	Quantity int `json:"quantity" example:"3"`
} // @name UpdateQuantityRequest

// RemoveItemRequest represents the JSON request body for removing a
// line item from the cart.
//
// @Description Request to remove a cart line item
// @Example {"product_id": "3d-printers", "variant": "Professional"}
type RemoveItemRequest struct {
	// ProductID is the catalog id of the product.
	ProductID string `json:"product_id" binding:"required" example:"3d-printers"`
	// Variant is the name of the selected variant, if any.
	Variant string `json:"variant,omitempty" example:"Professional"`
} // @name RemoveItemRequest

// ApplyDiscountRequest represents the JSON request body for applying a
// discount code. Codes are matched case-insensitively.
//
// @Description Request to apply a discount code to the cart
// @Example {"code": "SYNTRIQ10"}
type ApplyDiscountRequest struct {
	// Code is the discount code to apply.
	Code string `json:"code" binding:"required" example:"SYNTRIQ10"`
} // @name ApplyDiscountRequest

// CheckoutRequest represents the JSON request body for placing an order.
//
// @Description Request to place an order for the current cart
// @Example {"email": "buyer@example.com", "name": "Jane Buyer"}
type CheckoutRequest struct {
	// Email is the contact address for the order confirmation.
	Email string `json:"email" binding:"required,email" example:"buyer@example.com"`
	// Name is the buyer's full name (optional).
	Name string `json:"name,omitempty" example:"Jane Buyer"`
} // @name CheckoutRequest

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrMissingProductID is returned when product_id is absent.
	ErrMissingProductID = &ValidationError{
		Field:   "product_id",
		Message: "is required",
	}
	// ErrMissingDiscountCode is returned when code is absent.
	ErrMissingDiscountCode = &ValidationError{
		Field:   "code",
		Message: "is required",
	}
)

// Validate performs custom validation on the add item request.
func (r *AddItemRequest) Validate() error {
	if r.ProductID == "" {
		return ErrMissingProductID
	}
	return nil
}

// Validate performs custom validation on the update quantity request.
func (r *UpdateQuantityRequest) Validate() error {
	if r.ProductID == "" {
		return ErrMissingProductID
	}
	return nil
}

// Validate performs custom validation on the remove item request.
func (r *RemoveItemRequest) Validate() error {
	if r.ProductID == "" {
		return ErrMissingProductID
	}
	return nil
}

// Validate performs custom validation on the apply discount request.
func (r *ApplyDiscountRequest) Validate() error {
	if r.Code == "" {
		return ErrMissingDiscountCode
	}
	return nil
}

// Validate performs custom validation on the checkout request.
func (r *CheckoutRequest) Validate() error {
	if r.Email == "" {
		return &ValidationError{Field: "email", Message: "is required"}
	}
	return nil
}
