package entity

import (
	"time"
)

// User is the aggregate root for the authentication domain.
// HashedPassword is a bcrypt hash; the plaintext never leaves the
// application layer. ResetToken is empty unless a password reset is
// pending for this user.
type User struct {
	ID             string
	Email          string
	HashedPassword string
	ResetToken     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
