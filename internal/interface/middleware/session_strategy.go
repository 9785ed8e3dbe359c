package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/sessionworks/authsvc/internal/application"
	"github.com/sessionworks/authsvc/internal/domain/entity"
	"github.com/sessionworks/authsvc/internal/domain/repository"
	"github.com/sessionworks/authsvc/pkg/helpers"
)

// SessionAuthStrategy resolves the user from the session cookie.
type SessionAuthStrategy struct {
	Sessions *application.SessionManager
}

func NewSessionAuthStrategy(sessions *application.SessionManager) *SessionAuthStrategy {
	return &SessionAuthStrategy{Sessions: sessions}
}

func (s *SessionAuthStrategy) CurrentUser(c *gin.Context) (*entity.User, error) {
	sid, err := c.Cookie(helpers.SessionCookieName)
	if err != nil || sid == "" {
		return nil, repository.ErrNotFound
	}
	return s.Sessions.CurrentUser(c.Request.Context(), sid)
}

var _ Strategy = (*SessionAuthStrategy)(nil)
