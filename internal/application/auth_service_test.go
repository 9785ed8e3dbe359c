package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sessionworks/authsvc/internal/domain/repository"
	"github.com/sessionworks/authsvc/internal/infrastructure/memory"
)

func newService() *Service {
	return NewService(memory.NewUserRepository(), memory.NewSessionStore(), nil, testLogger(), "http://localhost/reset-password", false)
}

func TestService_RegisterLoginLogout(t *testing.T) {
	t.Parallel()

	svc := newService()
	ctx := context.Background()

	u, err := svc.RegisterUser(ctx, "a@x.com", "pw1")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "ghost@x.com", "pw1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	sid, err := svc.Login(ctx, "a@x.com", "pw1")
	require.NoError(t, err)

	got, err := svc.GetCurrentUser(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	assert.True(t, svc.Logout(ctx, sid))

	_, err = svc.GetCurrentUser(ctx, sid)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.False(t, svc.Logout(ctx, sid))
}

func TestService_PasswordResetFlow(t *testing.T) {
	t.Parallel()

	svc := newService()
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, "a@x.com", "old-pw")
	require.NoError(t, err)

	_, err = svc.RequestPasswordReset(ctx, "ghost@x.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	token, err := svc.RequestPasswordReset(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.NoError(t, svc.ConfirmPasswordReset(ctx, token, "new-pw"))

	_, err = svc.Login(ctx, "a@x.com", "old-pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	sid, err := svc.Login(ctx, "a@x.com", "new-pw")
	require.NoError(t, err)
	assert.NotEmpty(t, sid)

	// single use: the consumed token is gone
	err = svc.ConfirmPasswordReset(ctx, token, "another-pw")
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, svc.ConfirmPasswordReset(ctx, "", "x"), ErrInvalidToken)
	assert.ErrorIs(t, svc.ConfirmPasswordReset(ctx, "bogus", "x"), ErrInvalidToken)
}

func TestService_FreshTokenInvalidatesPending(t *testing.T) {
	t.Parallel()

	svc := newService()
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, "a@x.com", "pw")
	require.NoError(t, err)

	first, err := svc.RequestPasswordReset(ctx, "a@x.com")
	require.NoError(t, err)
	second, err := svc.RequestPasswordReset(ctx, "a@x.com")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	// the overwritten token is no longer valid
	assert.ErrorIs(t, svc.ConfirmPasswordReset(ctx, first, "x"), ErrInvalidToken)
	assert.NoError(t, svc.ConfirmPasswordReset(ctx, second, "x"))
}
