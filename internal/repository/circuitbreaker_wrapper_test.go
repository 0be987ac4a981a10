package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syntriq/cart-service/internal/circuitbreaker"
)

// failingCartStore fails every operation.
type failingCartStore struct {
	err error
}

func (s *failingCartStore) Load(context.Context, string) (*CartRecord, error) {
	return nil, s.err
}

func (s *failingCartStore) Save(context.Context, *CartRecord) error { return s.err }

func (s *failingCartStore) Delete(context.Context, string) error { return s.err }

func newTestBreaker(failureThreshold int) *circuitbreaker.CircuitBreaker {
	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: failureThreshold,
		SuccessThreshold: 1,
		Timeout:          time.Minute,
		Name:             "test-carts",
	})
}

func TestCartStoreWithCircuitBreaker_OpenCircuitLoadsEmpty(t *testing.T) {
	store := NewCartStoreWithCircuitBreaker(&failingCartStore{err: errors.New("down")}, newTestBreaker(1))
	ctx := context.Background()

	// First failure opens the circuit.
	_, err := store.Load(ctx, "cart-1")
	require.Error(t, err)
	assert.True(t, store.GetCircuitBreaker().IsOpen())

	// Open circuit degrades loads to an empty record.
	record, err := store.Load(ctx, "cart-1")
	require.NoError(t, err)
	assert.Equal(t, "cart-1", record.CartID)
	assert.Empty(t, record.Items)
}

func TestCartStoreWithCircuitBreaker_SaveErrorPropagates(t *testing.T) {
	downstream := errors.New("down")
	store := NewCartStoreWithCircuitBreaker(&failingCartStore{err: downstream}, newTestBreaker(2))

	err := store.Save(context.Background(), EmptyCartRecord("cart-1"))
	assert.ErrorIs(t, err, downstream)
}

func TestCartStoreWithCircuitBreaker_OpenCircuitRejectsSaves(t *testing.T) {
	store := NewCartStoreWithCircuitBreaker(&failingCartStore{err: errors.New("down")}, newTestBreaker(1))
	ctx := context.Background()

	_ = store.Save(ctx, EmptyCartRecord("cart-1"))
	err := store.Save(ctx, EmptyCartRecord("cart-1"))

	assert.ErrorIs(t, err, circuitbreaker.ErrCircuitOpen)
}
