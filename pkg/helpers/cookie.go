package helpers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the opaque session id.
const SessionCookieName = "session_id"

// CookieManager writes and clears the session cookie.
type CookieManager struct {
	Domain string
	Secure bool
}

func NewCookie(domain string, secure bool) *CookieManager {
	return &CookieManager{Domain: domain, Secure: secure}
}

// SetSession stores the session id cookie. A zero ttl makes it a session
// cookie that lives until the browser closes or the server destroys the
// session.
func (m *CookieManager) SetSession(c *gin.Context, sid string, ttl time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	maxAge := 0
	if ttl > 0 {
		maxAge = int(ttl.Seconds())
	}
	c.SetCookie(SessionCookieName, sid, maxAge, "/", m.Domain, m.Secure, true)
}

func (m *CookieManager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", m.Domain, m.Secure, true)
}
