// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/syntriq/cart-service/internal/circuitbreaker"
)

// CartStoreWithCircuitBreaker wraps a CartStore with circuit breaker
// protection so a struggling database degrades the cart to "empty"
// instead of stalling every request.
type CartStoreWithCircuitBreaker struct {
	store          CartStore
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewCartStoreWithCircuitBreaker creates a new cart store wrapper with circuit breaker.
func NewCartStoreWithCircuitBreaker(store CartStore, cb *circuitbreaker.CircuitBreaker) *CartStoreWithCircuitBreaker {
	return &CartStoreWithCircuitBreaker{
		store:          store,
		circuitBreaker: cb,
	}
}

// Load reads a cart slot with circuit breaker protection. An open
// circuit yields an empty record: the cart falls back to empty, it
// never errors the caller.
func (s *CartStoreWithCircuitBreaker) Load(ctx context.Context, cartID string) (*CartRecord, error) {
	var result *CartRecord
	err := s.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = s.store.Load(ctx, cartID)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return EmptyCartRecord(cartID), nil
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Save writes a cart slot with circuit breaker protection. The write
// failure propagates; the engine logs and swallows it because the
// in-memory mutation already succeeded.
func (s *CartStoreWithCircuitBreaker) Save(ctx context.Context, record *CartRecord) error {
	return s.circuitBreaker.Execute(ctx, func() error {
		return s.store.Save(ctx, record)
	})
}

// Delete removes a cart slot with circuit breaker protection.
func (s *CartStoreWithCircuitBreaker) Delete(ctx context.Context, cartID string) error {
	return s.circuitBreaker.Execute(ctx, func() error {
		return s.store.Delete(ctx, cartID)
	})
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (s *CartStoreWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return s.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// An open circuit silently drops the entry (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query reads log entries with circuit breaker protection. An open
// circuit returns an empty result set.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}
