package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/sessionworks/authsvc/internal/domain/repository"
	"github.com/sessionworks/authsvc/pkg/helpers"
)

const resetTokenBytes = 32

// ResetTokenManager issues and consumes single-use password-reset tokens.
// The token is an attribute of the user record, so requesting a new one
// overwrites any token still pending.
type ResetTokenManager struct {
	Repo   repository.UserRepository
	Logger *logrus.Logger
}

func NewResetTokenManager(repo repository.UserRepository, logger *logrus.Logger) *ResetTokenManager {
	return &ResetTokenManager{Repo: repo, Logger: logger}
}

// GetResetToken generates a fresh token for the user with that email and
// persists it, invalidating any previous token. Unknown email yields
// repository.ErrNotFound.
func (m *ResetTokenManager) GetResetToken(ctx context.Context, email string) (string, error) {
	u, err := m.Repo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	token, err := helpers.GenerateToken(resetTokenBytes)
	if err != nil {
		return "", err
	}
	if err := m.Repo.UpdateCredentials(ctx, u.ID, repository.CredentialUpdate{ResetToken: &token}); err != nil {
		return "", err
	}
	if m.Logger != nil {
		m.Logger.WithField("user_id", u.ID).Info("reset token issued")
	}
	return token, nil
}

// UpdatePassword consumes the token: the new hash is stored and the token
// cleared in one atomic update, so a second use of the same token fails
// with ErrInvalidToken.
func (m *ResetTokenManager) UpdatePassword(ctx context.Context, token, newPassword string) error {
	if token == "" {
		return ErrInvalidToken
	}
	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := m.Repo.ConsumeResetToken(ctx, token, hash); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidToken
		}
		return err
	}
	if m.Logger != nil {
		m.Logger.Info("password updated via reset token")
	}
	return nil
}
