package storage

import (
	"context"
	"sync"

	"orderflow/web-svc/internal/domain"
	"orderflow/web-svc/internal/service"
)

var _ service.SessionStore = (*MemorySessionStore)(nil)

// MemorySessionStore is used when no Redis is configured. Sessions are lost on restart.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]domain.Session)}
}

func (s *MemorySessionStore) Load(_ context.Context, visitorID string) (domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[visitorID], nil
}

func (s *MemorySessionStore) Save(_ context.Context, visitorID string, session domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[visitorID] = session
	return nil
}

func (s *MemorySessionStore) Clear(_ context.Context, visitorID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, visitorID)
	return nil
}
