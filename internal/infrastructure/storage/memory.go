package storage

import (
	"context"
	"sync"
)

// MemoryStore é uma implementação de Store em memória, sem persistência.
// Usada em testes e como backend descartável.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]Document
}

// NewMemoryStore cria uma nova instância de MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs: make(map[string]Document),
	}
}

// Get implementa Store.Get
func (s *MemoryStore) Get(ctx context.Context, key string) (*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[key]
	if !ok {
		return nil, ErrKeyNotFound
	}

	// Copiar o conteúdo para isolar o chamador do mapa interno
	clone := doc
	clone.Data = append([]byte(nil), doc.Data...)
	return &clone, nil
}

// Put implementa Store.Put
func (s *MemoryStore) Put(ctx context.Context, key string, doc *Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *doc
	stored.Data = append([]byte(nil), doc.Data...)
	s.docs[key] = stored
	return nil
}

// Keys implementa Store.Keys
func (s *MemoryStore) Keys(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.docs))
	for key := range s.docs {
		keys = append(keys, key)
	}
	return keys, nil
}

// Close implementa Store.Close
func (s *MemoryStore) Close() error {
	return nil
}
