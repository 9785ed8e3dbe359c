package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/sessionworks/authsvc/internal/application"
	"github.com/sessionworks/authsvc/internal/domain/entity"
	"github.com/sessionworks/authsvc/internal/domain/repository"
	"github.com/sessionworks/authsvc/pkg/basicauth"
)

// BasicAuthStrategy authenticates every request from its Authorization
// header, with no server-side session involved.
type BasicAuthStrategy struct {
	Auth *application.Authenticator
	Repo repository.UserRepository
}

func NewBasicAuthStrategy(auth *application.Authenticator, repo repository.UserRepository) *BasicAuthStrategy {
	return &BasicAuthStrategy{Auth: auth, Repo: repo}
}

func (s *BasicAuthStrategy) CurrentUser(c *gin.Context) (*entity.User, error) {
	b64, ok := basicauth.ExtractBase64Header(c.GetHeader("Authorization"))
	if !ok {
		return nil, repository.ErrNotFound
	}
	decoded, ok := basicauth.DecodeBase64(b64)
	if !ok {
		return nil, repository.ErrNotFound
	}
	email, password, ok := basicauth.ExtractCredentials(decoded)
	if !ok {
		return nil, repository.ErrNotFound
	}
	if !s.Auth.ValidLogin(c.Request.Context(), email, password) {
		return nil, application.ErrInvalidCredentials
	}
	return s.Repo.GetByEmail(c.Request.Context(), email)
}

var _ Strategy = (*BasicAuthStrategy)(nil)
