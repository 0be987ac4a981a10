package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/rs/zerolog/log"

	"github.com/syntriq/cart-service/internal/cart"
	"github.com/syntriq/cart-service/internal/domain/dto"
	"github.com/syntriq/cart-service/internal/domain/model"
)

// ErrEmptyCart is returned when checking out a cart with no items.
var ErrEmptyCart = errors.New("cart is empty")

// CheckoutService places orders for carts.
type CheckoutService interface {
	// Checkout converts the cart into an order confirmation and clears
	// the cart. An empty cart cannot be checked out.
	Checkout(ctx context.Context, cartID, email, name string) (*dto.CheckoutResponse, error)
}

// CheckoutServiceImpl implements CheckoutService on top of the cart
// engine. Order capture beyond the confirmation number (payment,
// fulfillment) is out of scope for this service.
type CheckoutServiceImpl struct {
	carts   cart.Service
	logging LoggingService
}

// NewCheckoutService creates a checkout service. The logging service
// is optional; a nil value disables order audit entries.
func NewCheckoutService(carts cart.Service, logging LoggingService) CheckoutService {
	return &CheckoutServiceImpl{
		carts:   carts,
		logging: logging,
	}
}

// Checkout places an order for the cart's current contents.
func (s *CheckoutServiceImpl) Checkout(ctx context.Context, cartID, email, name string) (*dto.CheckoutResponse, error) {
	snapshot := s.carts.Get(ctx, cartID)
	if len(snapshot.Items) == 0 {
		return nil, ErrEmptyCart
	}

	orderNumber, err := generateOrderNumber()
	if err != nil {
		return nil, fmt.Errorf("failed to generate order number: %w", err)
	}

	response := &dto.CheckoutResponse{
		OrderNumber: orderNumber,
		Total:       snapshot.Breakdown.Total,
		ItemCount:   snapshot.Breakdown.ItemCount,
	}

	s.carts.Clear(ctx, cartID)

	if s.logging != nil {
		entry := &model.LogEntry{
			Level:      "info",
			Message:    "order placed",
			ActionType: "checkout",
			UserEmail:  email,
		}
		entry.WithField("cart_id", cartID).
			WithField("order_number", orderNumber).
			WithField("total", response.Total).
			WithField("buyer_name", name)
		if err := s.logging.CreateLog(ctx, entry); err != nil {
			log.Warn().Err(err).Str("order_number", orderNumber).Msg("failed to write order audit entry")
		}
	}

	return response, nil
}

// generateOrderNumber produces a confirmation number like SYN-847291.
func generateOrderNumber() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("SYN-%06d", n.Int64()+100000), nil
}
