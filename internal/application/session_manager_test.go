package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sessionworks/authsvc/internal/domain/entity"
	"github.com/sessionworks/authsvc/internal/domain/repository"
	"github.com/sessionworks/authsvc/internal/infrastructure/memory"
)

func newSessionFixture(t *testing.T) (*SessionManager, *entity.User) {
	t.Helper()

	users := memory.NewUserRepository()
	u := &entity.User{Email: "a@x.com", HashedPassword: "hash"}
	require.NoError(t, users.Create(context.Background(), u))

	return NewSessionManager(memory.NewSessionStore(), users, testLogger()), u
}

func TestSessionManager_CreateAndResolve(t *testing.T) {
	t.Parallel()

	m, u := newSessionFixture(t)
	ctx := context.Background()

	sid, err := m.CreateSession(ctx, u.ID)
	require.NoError(t, err)
	require.NotEmpty(t, sid)

	uid, err := m.UserIDForSession(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, u.ID, uid)

	got, err := m.CurrentUser(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "a@x.com", got.Email)

	// two sessions for the same user get distinct ids
	sid2, err := m.CreateSession(ctx, u.ID)
	require.NoError(t, err)
	assert.NotEqual(t, sid, sid2)
}

func TestSessionManager_CreateSessionValidation(t *testing.T) {
	t.Parallel()

	m, _ := newSessionFixture(t)
	ctx := context.Background()

	_, err := m.CreateSession(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = m.CreateSession(ctx, "unknown-user")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSessionManager_DestroySession(t *testing.T) {
	t.Parallel()

	m, u := newSessionFixture(t)
	ctx := context.Background()

	sid, err := m.CreateSession(ctx, u.ID)
	require.NoError(t, err)

	assert.True(t, m.DestroySession(ctx, sid))

	// destroyed session ids never resolve again
	_, err = m.CurrentUser(ctx, sid)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// idempotent: the second destroy reports false
	assert.False(t, m.DestroySession(ctx, sid))
	assert.False(t, m.DestroySession(ctx, "never-existed"))
	assert.False(t, m.DestroySession(ctx, ""))
}
