package repository

import (
	"context"

	"github.com/sessionworks/authsvc/internal/domain/entity"
)

// CredentialUpdate is a partial update of a user's secret material.
// A nil field is left untouched; a non-nil empty ResetToken clears the
// pending token.
type CredentialUpdate struct {
	HashedPassword *string
	ResetToken     *string
}

// UserRepository defines the interface for user-related store operations.
type UserRepository interface {
	// Create persists a new user. Returns ErrDuplicateEmail if the email
	// is already taken.
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetByResetToken finds the user holding a pending reset token.
	GetByResetToken(ctx context.Context, token string) (*entity.User, error)
	// UpdateCredentials applies a partial update to hashed_password and/or
	// reset_token. Returns ErrNotFound for an unknown id.
	UpdateCredentials(ctx context.Context, id string, upd CredentialUpdate) error
	// ConsumeResetToken atomically stores the new password hash and clears
	// the reset token of the user holding it. Returns ErrNotFound if no
	// user holds the token. Both fields change together or not at all.
	ConsumeResetToken(ctx context.Context, token, hashedPassword string) error
}
