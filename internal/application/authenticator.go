package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/sessionworks/authsvc/internal/domain/entity"
	"github.com/sessionworks/authsvc/internal/domain/repository"
	"github.com/sessionworks/authsvc/pkg/helpers"
)

// Authenticator verifies email/password pairs against the user store.
type Authenticator struct {
	Repo   repository.UserRepository
	Logger *logrus.Logger

	// dummyHash is compared against when the email is unknown so the
	// not-found path costs the same as a wrong password.
	dummyHash string
}

func NewAuthenticator(repo repository.UserRepository, logger *logrus.Logger) *Authenticator {
	return &Authenticator{Repo: repo, Logger: logger, dummyHash: helpers.DummyHash()}
}

// Register hashes the password and creates the user. An empty email or
// password is rejected with ErrInvalidInput; an existing email surfaces as
// repository.ErrDuplicateEmail.
func (a *Authenticator) Register(ctx context.Context, email, password string) (*entity.User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidInput
	}
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Email: email, HashedPassword: hash}
	if err := a.Repo.Create(ctx, u); err != nil {
		return nil, err
	}
	if a.Logger != nil {
		a.Logger.WithField("user_id", u.ID).Info("user registered")
	}
	return u, nil
}

// ValidLogin reports whether the pair matches a stored user. An unknown
// email returns false, never an error, and still burns a bcrypt comparison.
func (a *Authenticator) ValidLogin(ctx context.Context, email, password string) bool {
	u, err := a.Repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		helpers.CheckPassword(a.dummyHash, password)
		return false
	}
	return helpers.CheckPassword(u.HashedPassword, password)
}
