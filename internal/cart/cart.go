// Package cart implements the cart engine: an ordered line-item store
// with mutation operations, discount resolution, and the derived
// pricing breakdown. State is held per cart key and written through to
// the persistence adapter on every mutation.
package cart

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/syntriq/cart-service/internal/domain/model"
	"github.com/syntriq/cart-service/internal/metrics"
	"github.com/syntriq/cart-service/internal/repository"
)

// Snapshot is a read-only view of one cart: the line items, the
// active discount, and the breakdown derived from them.
type Snapshot struct {
	CartID    string                `json:"cart_id"`
	Items     []model.LineItem      `json:"items"`
	Discount  *model.DiscountPolicy `json:"discount,omitempty"`
	Breakdown model.CartBreakdown   `json:"breakdown"`
}

// Service defines the cart engine operations. Every mutating call
// persists the full cart synchronously; persistence failures are
// logged and swallowed because the in-memory mutation already
// succeeded.
type Service interface {
	// Get returns the current snapshot for the cart key, loading it
	// from the store on first touch.
	Get(ctx context.Context, cartID string) Snapshot
	// AddItem appends a line item or, when one with the same
	// product+variant identity exists, increments its quantity.
	AddItem(ctx context.Context, cartID string, product model.Product, variant *model.Variant, quantity int) Snapshot
	// UpdateQuantity sets the quantity for the identified line item.
	// A quantity of zero or less removes the item.
	UpdateQuantity(ctx context.Context, cartID string, key model.ItemKey, quantity int) Snapshot
	// RemoveItem deletes the identified line item; absent items are a
	// no-op.
	RemoveItem(ctx context.Context, cartID string, key model.ItemKey) Snapshot
	// Clear empties the cart and drops any active discount.
	Clear(ctx context.Context, cartID string) Snapshot
	// ApplyDiscount activates the policy for the given code. Unknown
	// codes return false and leave the active policy unchanged.
	ApplyDiscount(ctx context.Context, cartID string, code string) (Snapshot, bool)
	// RemoveDiscount clears the active policy; removing when none is
	// active is not an error.
	RemoveDiscount(ctx context.Context, cartID string) Snapshot
}

// cartState is the in-memory state of one cart key.
type cartState struct {
	items    []model.LineItem
	discount *model.DiscountPolicy
}

// EngineService implements Service. One logical writer per cart key
// is assumed (a single browser tab); the mutex only serializes
// concurrent HTTP requests touching the same process.
//
// Only carts with content are held in memory. Cart keys are
// client-supplied, so caching every key that ever issued a read would
// let anonymous traffic grow the map forever.
type EngineService struct {
	store repository.CartStore
	now   func() time.Time

	mu    sync.Mutex
	carts map[string]*cartState
}

// Option configures an EngineService.
type Option func(*EngineService)

// WithClock injects a time source, used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *EngineService) {
		s.now = now
	}
}

// NewService creates a cart engine backed by the given store.
func NewService(store repository.CartStore, opts ...Option) *EngineService {
	s := &EngineService{
		store: store,
		now:   time.Now,
		carts: make(map[string]*cartState),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// state returns the in-memory state for a cart key, loading it from
// the store on first touch. Load failures degrade to an empty cart
// that is NOT cached, so the persisted cart resurfaces once the
// backend recovers. Caller must hold the lock.
func (s *EngineService) state(ctx context.Context, cartID string) *cartState {
	if st, ok := s.carts[cartID]; ok {
		return st
	}

	st := &cartState{items: []model.LineItem{}}
	record, err := s.store.Load(ctx, cartID)
	if err != nil {
		metrics.RecordCartStoreOperation("load", "error")
		log.Warn().Err(err).Str("cart_id", cartID).Msg("Cart load failed, starting empty")
		return st
	}
	if record != nil {
		metrics.RecordCartStoreOperation("load", "success")
		st.items = sanitizeItems(record.Items)
		st.discount = record.Discount
	}
	s.retain(cartID, st)
	return st
}

// retain caches carts with content and drops empty ones. Reads of
// never-used keys leave no trace, and an emptied cart frees its slot.
// Caller must hold the lock.
func (s *EngineService) retain(cartID string, st *cartState) {
	if len(st.items) == 0 && st.discount == nil {
		delete(s.carts, cartID)
		return
	}
	s.carts[cartID] = st
}

// sanitizeItems drops persisted rows that violate store invariants
// (non-positive quantity, missing product id) so a corrupt slot can
// never resurrect an invalid cart.
func sanitizeItems(items []model.LineItem) []model.LineItem {
	clean := make([]model.LineItem, 0, len(items))
	for _, item := range items {
		if item.Quantity < 1 || item.Product.ID == "" {
			continue
		}
		clean = append(clean, item)
	}
	return clean
}

// persist writes the full cart through to the store. Failure is
// logged and swallowed: the mutation already succeeded in memory and
// a broken cart degrades rather than erroring the caller.
func (s *EngineService) persist(ctx context.Context, cartID string, st *cartState) {
	record := &repository.CartRecord{
		CartID:   cartID,
		Items:    st.items,
		Discount: st.discount,
	}
	if err := s.store.Save(ctx, record); err != nil {
		metrics.RecordCartStoreOperation("save", "error")
		log.Warn().Err(err).Str("cart_id", cartID).Msg("Cart write-through failed")
		return
	}
	metrics.RecordCartStoreOperation("save", "success")
}

// snapshot builds the read view. Caller must hold the lock.
func (s *EngineService) snapshot(cartID string, st *cartState) Snapshot {
	items := make([]model.LineItem, len(st.items))
	copy(items, st.items)
	return Snapshot{
		CartID:    cartID,
		Items:     items,
		Discount:  st.discount,
		Breakdown: ComputeBreakdown(st.items, st.discount),
	}
}

// Get returns the current snapshot for the cart key.
func (s *EngineService) Get(ctx context.Context, cartID string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(cartID, s.state(ctx, cartID))
}

// AddItem merges into an existing line item or appends a new one.
// The product (and variant) are snapshotted by value, so later
// catalog changes do not reprice items already in the cart.
func (s *EngineService) AddItem(ctx context.Context, cartID string, product model.Product, variant *model.Variant, quantity int) Snapshot {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(ctx, cartID)
	now := s.now()

	key := model.ItemKey{ProductID: product.ID}
	var variantCopy *model.Variant
	if variant != nil {
		v := *variant
		variantCopy = &v
		key.VariantName = v.Name
	}

	merged := false
	for i := range st.items {
		if st.items[i].Key() == key {
			st.items[i].Quantity += quantity
			st.items[i].UpdatedAt = now
			merged = true
			break
		}
	}
	if !merged {
		st.items = append(st.items, model.LineItem{
			Product:   product,
			Variant:   variantCopy,
			Quantity:  quantity,
			AddedAt:   now,
			UpdatedAt: now,
		})
	}

	s.retain(cartID, st)
	s.persist(ctx, cartID, st)
	return s.snapshot(cartID, st)
}

// UpdateQuantity sets the quantity for a line item; zero or negative
// removes it. Repeating the call with the same value leaves the cart
// state-equivalent.
func (s *EngineService) UpdateQuantity(ctx context.Context, cartID string, key model.ItemKey, quantity int) Snapshot {
	if quantity <= 0 {
		return s.RemoveItem(ctx, cartID, key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(ctx, cartID)
	for i := range st.items {
		if st.items[i].Key() == key {
			st.items[i].Quantity = quantity
			st.items[i].UpdatedAt = s.now()
			s.retain(cartID, st)
			s.persist(ctx, cartID, st)
			break
		}
	}
	return s.snapshot(cartID, st)
}

// RemoveItem deletes the identified line item, preserving the order
// of the remaining items. Removing an absent item is a no-op.
func (s *EngineService) RemoveItem(ctx context.Context, cartID string, key model.ItemKey) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(ctx, cartID)
	for i := range st.items {
		if st.items[i].Key() == key {
			st.items = append(st.items[:i], st.items[i+1:]...)
			s.retain(cartID, st)
			s.persist(ctx, cartID, st)
			break
		}
	}
	return s.snapshot(cartID, st)
}

// Clear empties the cart and drops the active discount.
func (s *EngineService) Clear(ctx context.Context, cartID string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(ctx, cartID)
	st.items = []model.LineItem{}
	st.discount = nil

	s.retain(cartID, st)
	s.persist(ctx, cartID, st)
	return s.snapshot(cartID, st)
}

// ApplyDiscount resolves the code against the fixed registry. On a
// match the policy replaces any previously active one; on a miss the
// active policy stays untouched and the boolean is false.
func (s *EngineService) ApplyDiscount(ctx context.Context, cartID string, code string) (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(ctx, cartID)
	policy, ok := ResolveDiscount(code)
	if !ok {
		return s.snapshot(cartID, st), false
	}

	st.discount = &policy
	s.retain(cartID, st)
	s.persist(ctx, cartID, st)
	return s.snapshot(cartID, st), true
}

// RemoveDiscount unconditionally clears the active policy.
func (s *EngineService) RemoveDiscount(ctx context.Context, cartID string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.state(ctx, cartID)
	if st.discount != nil {
		st.discount = nil
		s.retain(cartID, st)
		s.persist(ctx, cartID, st)
	}
	return s.snapshot(cartID, st)
}
