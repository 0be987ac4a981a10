package mocks

import (
	"context"
	"sync"

	"github.com/syntriq/cart-service/internal/repository"
)

// LogsRepository is an in-memory repository.LogsRepositoryInterface
// for tests.
type LogsRepository struct {
	mu      sync.Mutex
	entries []*repository.LogEntryDocument

	CreateErr error
}

// NewLogsRepository creates an empty in-memory logs repository.
func NewLogsRepository() *LogsRepository {
	return &LogsRepository{}
}

// Create records a single entry.
func (m *LogsRepository) Create(_ context.Context, entry *repository.LogEntryDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.entries = append(m.entries, entry)
	return nil
}

// CreateMany records multiple entries.
func (m *LogsRepository) CreateMany(_ context.Context, entries []*repository.LogEntryDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.entries = append(m.entries, entries...)
	return nil
}

// Query returns all recorded entries, ignoring filters.
func (m *LogsRepository) Query(_ context.Context, _ repository.LogQueryOptions) ([]*repository.LogEntryDocument, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*repository.LogEntryDocument{}, m.entries...), nil
}

// Entries returns the recorded entries for assertions.
func (m *LogsRepository) Entries() []*repository.LogEntryDocument {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*repository.LogEntryDocument{}, m.entries...)
}
