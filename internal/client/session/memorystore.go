package session

import (
	"context"
	"sync"
)

// MemoryStore keeps the slots in memory. It satisfies Store for tests and
// for runs where persistence is not wanted.
type MemoryStore struct {
	mu      sync.Mutex
	session *Session
	account *AccountRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Get(ctx context.Context) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session, nil
}

func (m *MemoryStore) Set(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = s
	return nil
}

func (m *MemoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session = nil
	return nil
}

func (m *MemoryStore) SetAccount(ctx context.Context, r *AccountRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.account = r
	return nil
}

func (m *MemoryStore) GetAccount(ctx context.Context) (*AccountRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.account, nil
}
