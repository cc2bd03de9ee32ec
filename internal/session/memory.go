package session

import (
	"context"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// MemoryStore keeps sessions in a bounded LRU. Entries are evicted after
// MaxTTL; shorter-lived kinds are expired lazily by the Manager.
type MemoryStore struct {
	lru *expirable.LRU[string, Session]
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a store holding at most capacity sessions
func NewMemoryStore(capacity int) *MemoryStore {
	return &MemoryStore{lru: expirable.NewLRU[string, Session](capacity, nil, MaxTTL)}
}

func (m *MemoryStore) Save(_ context.Context, s *Session) error {
	m.lru.Add(s.ID, *s)
	return nil
}

func (m *MemoryStore) Get(_ context.Context, id string) (*Session, error) {
	s, ok := m.lru.Get(id)
	if !ok {
		return nil, ErrSessionExpired
	}
	return &s, nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.lru.Remove(id)
	return nil
}

// Len reports the number of stored sessions
func (m *MemoryStore) Len() int {
	return m.lru.Len()
}
