// Package repository provides the file-backed cart store.
package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/syntriq/cart-service/internal/domain/model"
)

// FileCartStore implements CartStore on the local filesystem: one
// JSON document per cart key under a data directory. It is the
// localStorage analog used when no database is configured; there is
// no cross-process coordination beyond last-writer-wins.
type FileCartStore struct {
	dir    string
	prefix string
}

// NewFileCartStore creates a file-backed cart store rooted at dir.
// The prefix namespaces slot files (e.g. "syntriq-cart").
func NewFileCartStore(dir, prefix string) (*FileCartStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	if prefix == "" {
		prefix = "syntriq-cart"
	}
	return &FileCartStore{dir: dir, prefix: prefix}, nil
}

// slotPath maps a cart key to its slot file. Keys are sanitized so a
// hostile cart ID cannot escape the data directory.
func (s *FileCartStore) slotPath(cartID string) string {
	sanitized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, cartID)
	return filepath.Join(s.dir, s.prefix+"-"+sanitized+".json")
}

// Load reads a cart slot. Missing files, unreadable files, and
// malformed JSON all yield an empty record: a broken cart degrades to
// "empty" rather than failing the caller.
func (s *FileCartStore) Load(_ context.Context, cartID string) (*CartRecord, error) {
	data, err := os.ReadFile(s.slotPath(cartID))
	if err != nil {
		return EmptyCartRecord(cartID), nil
	}

	var record CartRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return EmptyCartRecord(cartID), nil
	}
	record.CartID = cartID
	if record.Items == nil {
		record.Items = []model.LineItem{}
	}
	return &record, nil
}

// Save serializes the full record and replaces the slot file. The
// write goes through a temp file and rename so a crash mid-write
// leaves the previous slot intact instead of a truncated document.
func (s *FileCartStore) Save(_ context.Context, record *CartRecord) error {
	record.UpdatedAt = time.Now()

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	path := s.slotPath(record.CartID)
	tmp, err := os.CreateTemp(s.dir, s.prefix+"-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}

// Delete removes the slot file; deleting an absent slot is not an error.
func (s *FileCartStore) Delete(_ context.Context, cartID string) error {
	err := os.Remove(s.slotPath(cartID))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
