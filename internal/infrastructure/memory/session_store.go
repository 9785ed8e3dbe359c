package memory

import (
	"context"
	"sync"

	"github.com/sessionworks/authsvc/internal/domain/repository"
)

// SessionStore keeps the session map in process memory. The original
// design hung this map off the authenticator type itself; keeping it an
// injected object gives each test its own isolated instance.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]string // sid -> user id
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]string)}
}

func (s *SessionStore) Put(ctx context.Context, sid, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sid] = userID
	return nil
}

func (s *SessionStore) Get(ctx context.Context, sid string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	uid, ok := s.sessions[sid]
	if !ok {
		return "", repository.ErrNotFound
	}
	return uid, nil
}

func (s *SessionStore) Delete(ctx context.Context, sid string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sid]; !ok {
		return false, nil
	}
	delete(s.sessions, sid)
	return true, nil
}

var _ repository.SessionStore = (*SessionStore)(nil)
