package application

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sessionworks/authsvc/internal/domain/entity"
	"github.com/sessionworks/authsvc/internal/domain/repository"
)

// SessionManager issues, resolves and destroys opaque session ids. The
// session map lives behind the injected SessionStore, constructed once at
// process start.
type SessionManager struct {
	Sessions repository.SessionStore
	Users    repository.UserRepository
	Logger   *logrus.Logger
}

func NewSessionManager(sessions repository.SessionStore, users repository.UserRepository, logger *logrus.Logger) *SessionManager {
	return &SessionManager{Sessions: sessions, Users: users, Logger: logger}
}

// CreateSession generates a fresh UUID session id for the user and records
// the mapping. The user must exist; creating sessions for unknown ids was
// possible in earlier revisions and is now rejected with ErrNotFound.
func (m *SessionManager) CreateSession(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", ErrInvalidInput
	}
	if _, err := m.Users.GetByID(ctx, userID); err != nil {
		return "", err
	}
	sid := uuid.NewString()
	if err := m.Sessions.Put(ctx, sid, userID); err != nil {
		return "", err
	}
	if m.Logger != nil {
		m.Logger.WithField("user_id", userID).Debug("session created")
	}
	return sid, nil
}

// UserIDForSession resolves a session id to its owning user id.
func (m *SessionManager) UserIDForSession(ctx context.Context, sid string) (string, error) {
	if sid == "" {
		return "", repository.ErrNotFound
	}
	return m.Sessions.Get(ctx, sid)
}

// CurrentUser resolves a session id to the full user record. A miss at
// either step yields repository.ErrNotFound.
func (m *SessionManager) CurrentUser(ctx context.Context, sid string) (*entity.User, error) {
	uid, err := m.UserIDForSession(ctx, sid)
	if err != nil {
		return nil, err
	}
	return m.Users.GetByID(ctx, uid)
}

// DestroySession removes the mapping and reports whether one existed.
// Destroying twice returns false the second time, and a session whose user
// no longer resolves also reports false.
func (m *SessionManager) DestroySession(ctx context.Context, sid string) bool {
	if sid == "" {
		return false
	}
	uid, err := m.Sessions.Get(ctx, sid)
	if err != nil {
		return false
	}
	if _, err := m.Users.GetByID(ctx, uid); err != nil {
		return false
	}
	ok, err := m.Sessions.Delete(ctx, sid)
	if err != nil {
		return false
	}
	if ok && m.Logger != nil {
		m.Logger.WithField("user_id", uid).Debug("session destroyed")
	}
	return ok
}
