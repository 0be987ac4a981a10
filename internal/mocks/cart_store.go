// Package mocks provides test doubles for the repository interfaces.
package mocks

import (
	"context"
	"sync"

	"github.com/syntriq/cart-service/internal/domain/model"
	"github.com/syntriq/cart-service/internal/repository"
)

// CartStore is an in-memory repository.CartStore for tests. Failures
// can be injected per operation.
type CartStore struct {
	mu      sync.Mutex
	records map[string]*repository.CartRecord

	LoadErr   error
	SaveErr   error
	DeleteErr error
	SaveCalls int
}

// NewCartStore creates an empty in-memory cart store.
func NewCartStore() *CartStore {
	return &CartStore{records: make(map[string]*repository.CartRecord)}
}

// Load returns the stored record or an empty one.
func (m *CartStore) Load(_ context.Context, cartID string) (*repository.CartRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if record, ok := m.records[cartID]; ok {
		return record, nil
	}
	return repository.EmptyCartRecord(cartID), nil
}

// Save stores a deep-enough copy of the record.
func (m *CartStore) Save(_ context.Context, record *repository.CartRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	stored := *record
	stored.Items = append([]model.LineItem{}, record.Items...)
	m.records[record.CartID] = &stored
	return nil
}

// Delete removes the record.
func (m *CartStore) Delete(_ context.Context, cartID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.records, cartID)
	return nil
}

// Record returns the stored record for assertions, or nil.
func (m *CartStore) Record(cartID string) *repository.CartRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.records[cartID]
}
