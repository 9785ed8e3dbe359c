package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sessionworks/authsvc/internal/domain/entity"
	"github.com/sessionworks/authsvc/pkg/basicauth"
)

// Strategy resolves the authenticated user for a request. Implementations
// are selected by configuration (AUTH_TYPE) instead of subclassing.
type Strategy interface {
	CurrentUser(c *gin.Context) (*entity.User, error)
}

// Authenticated enforces the selected strategy on every path that is not
// exempt per the exclusion list. On success it sets userID and userEmail
// in the Gin context for downstream handlers.
func Authenticated(strategy Strategy, excludedPaths []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !basicauth.RequireAuth(c.Request.URL.Path, excludedPaths) {
			c.Next()
			return
		}
		u, err := strategy.CurrentUser(c)
		if err != nil || u == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Set("userID", u.ID)
		c.Set("userEmail", u.Email)
		c.Next()
	}
}
