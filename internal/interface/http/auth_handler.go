package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/sessionworks/authsvc/internal/application"
	"github.com/sessionworks/authsvc/internal/domain/repository"
	"github.com/sessionworks/authsvc/pkg/helpers"
	"github.com/sessionworks/authsvc/pkg/validation"
)

// AuthHandler maps the HTTP surface onto the application facade. Status
// codes follow the service contract: registration conflicts are 400, bad
// logins 401, everything touching an unknown session or token 403.
type AuthHandler struct {
	Svc        *application.Service
	Logger     *logrus.Logger
	Cookies    *helpers.CookieManager
	SessionTTL time.Duration
}

func NewAuthHandler(svc *application.Service, logger *logrus.Logger, cookieDomain string, cookieSecure bool, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		Svc:        svc,
		Logger:     logger,
		Cookies:    helpers.NewCookie(cookieDomain, cookieSecure),
		SessionTTL: sessionTTL,
	}
}

type credentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type resetInitRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type resetConfirmRequest struct {
	Email       string `json:"email" binding:"omitempty,email"`
	ResetToken  string `json:"reset_token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,pwd"`
}

// Register POST /api/users
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "details": validation.ToDetails(err)})
		return
	}

	u, err := h.Svc.RegisterUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			c.JSON(http.StatusBadRequest, gin.H{"message": "email already registered"})
		case errors.Is(err, application.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		default:
			h.Logger.WithError(err).Error("register failed")
			c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"email": u.Email, "message": "user created"})
}

// Login POST /api/sessions
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	sid, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	h.Cookies.SetSession(c, sid, h.SessionTTL)
	c.JSON(http.StatusOK, gin.H{"email": req.Email, "message": "logged in"})
}

// Logout DELETE /api/sessions
func (h *AuthHandler) Logout(c *gin.Context) {
	sid, err := c.Cookie(helpers.SessionCookieName)
	if err != nil || sid == "" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}
	if !h.Svc.Logout(c.Request.Context(), sid) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}
	h.Cookies.Clear(c)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Profile GET /api/profile
func (h *AuthHandler) Profile(c *gin.Context) {
	email := c.GetString("userEmail")
	if email == "" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"email": email})
}

// ResetInit POST /api/reset_password
func (h *AuthHandler) ResetInit(c *gin.Context) {
	var req resetInitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	token, err := h.Svc.RequestPasswordReset(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"email": req.Email, "reset_token": token})
}

// ResetConfirm PUT /api/reset_password
func (h *AuthHandler) ResetConfirm(c *gin.Context) {
	var req resetConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	if err := h.Svc.ConfirmPasswordReset(c.Request.Context(), req.ResetToken, req.NewPassword); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"email": req.Email, "message": "Password updated"})
}

// Status GET /api/status — liveness, always exempt from auth.
func (h *AuthHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}
