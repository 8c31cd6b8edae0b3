package storage

import (
	"context"
	"sync"

	"github.com/CreativeUnicorns/prefsxml"
)

// MemoryStorage implements the Storage interface over an in-memory byte slice.
// It behaves like FileStorage for a file holding those bytes, which makes it useful
// for testing the editor without touching disk.
type MemoryStorage struct {
	mu     sync.RWMutex
	data   []byte
	exists bool
	saves  int
}

// NewMemoryStorage creates an empty MemoryStorage; Load reports prefsxml.ErrNotFound
// until the first Save.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// NewMemoryStorageWithData creates a MemoryStorage that starts out holding data.
func NewMemoryStorageWithData(data []byte) *MemoryStorage {
	return &MemoryStorage{data: append([]byte(nil), data...), exists: true}
}

// Load parses the stored bytes.
func (s *MemoryStorage) Load(_ context.Context) (*prefsxml.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.exists {
		return nil, prefsxml.ErrNotFound
	}
	return prefsxml.ParseDocument(s.data)
}

// Save replaces the stored bytes with the serialized document.
func (s *MemoryStorage) Save(_ context.Context, doc *prefsxml.Document) error {
	data, err := doc.Bytes()
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = data
	s.exists = true
	s.saves++
	return nil
}

// Bytes returns a copy of the stored bytes, or nil if nothing is stored.
func (s *MemoryStorage) Bytes() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.exists {
		return nil
	}
	return append([]byte(nil), s.data...)
}

// Saves returns how many times Save has succeeded.
func (s *MemoryStorage) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

// Close is a no-op for MemoryStorage as there are no external resources to release.
func (s *MemoryStorage) Close() error {
	return nil
}
