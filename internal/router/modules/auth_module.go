package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/sessionworks/authsvc/internal/interface/http"
)

// AuthModule wires the authentication HTTP surface:
// Public (per the exclusion list): POST /api/users, POST /api/sessions,
// POST/PUT /api/reset_password, GET /api/status
// Protected: GET /api/profile, DELETE /api/sessions

type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/status", m.Handler.Status)

	rg.POST("/users", m.Handler.Register)
	rg.POST("/sessions", m.Handler.Login)
	rg.DELETE("/sessions", m.Handler.Logout)

	rg.GET("/profile", m.Handler.Profile)

	rg.POST("/reset_password", m.Handler.ResetInit)
	rg.PUT("/reset_password", m.Handler.ResetConfirm)
}
