package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/sessionworks/authsvc/internal/domain/entity"
	"github.com/sessionworks/authsvc/internal/domain/repository"
	"github.com/sessionworks/authsvc/pkg/helpers"
	"github.com/sessionworks/authsvc/pkg/mailer"
)

// Service is the facade the HTTP layer talks to. It composes the
// authenticator, session manager and reset-token manager; every error it
// returns is the underlying component's error.
type Service struct {
	Auth     *Authenticator
	Sessions *SessionManager
	Resets   *ResetTokenManager
	Repo     repository.UserRepository
	Pub      *helpers.RabbitPublisher
	Logger   *logrus.Logger

	ResetPasswordURL string
	MailSendEnabled  bool
}

func NewService(repo repository.UserRepository, sessions repository.SessionStore, pub *helpers.RabbitPublisher, logger *logrus.Logger, resetPasswordURL string, mailSendEnabled bool) *Service {
	return &Service{
		Auth:             NewAuthenticator(repo, logger),
		Sessions:         NewSessionManager(sessions, repo, logger),
		Resets:           NewResetTokenManager(repo, logger),
		Repo:             repo,
		Pub:              pub,
		Logger:           logger,
		ResetPasswordURL: resetPasswordURL,
		MailSendEnabled:  mailSendEnabled,
	}
}

// RegisterUser creates a new account.
func (s *Service) RegisterUser(ctx context.Context, email, password string) (*entity.User, error) {
	return s.Auth.Register(ctx, email, password)
}

// Login verifies the credentials and opens a session, returning the opaque
// session id the client holds from now on.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	if !s.Auth.ValidLogin(ctx, email, password) {
		return "", ErrInvalidCredentials
	}
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	return s.Sessions.CreateSession(ctx, u.ID)
}

// Logout destroys the session. Reports whether a session existed.
func (s *Service) Logout(ctx context.Context, sid string) bool {
	return s.Sessions.DestroySession(ctx, sid)
}

// GetCurrentUser resolves a session id to its user.
func (s *Service) GetCurrentUser(ctx context.Context, sid string) (*entity.User, error) {
	return s.Sessions.CurrentUser(ctx, sid)
}

// RequestPasswordReset issues a reset token for the account and, when a
// publisher is wired, enqueues the reset email. Delivery is best-effort
// and never fails the call.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	token, err := s.Resets.GetResetToken(ctx, email)
	if err != nil {
		return "", err
	}

	if s.Pub != nil && s.MailSendEnabled {
		job := mailer.EmailJob{
			To:       email,
			Template: "reset_password",
			Data: map[string]any{
				"Email":    email,
				"ResetURL": s.ResetPasswordURL + "?token=" + token,
			},
		}
		if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
			s.Logger.WithError(err).Warn("enqueue reset email failed")
		}
	}
	return token, nil
}

// ConfirmPasswordReset consumes the token and stores the new password.
func (s *Service) ConfirmPasswordReset(ctx context.Context, token, newPassword string) error {
	return s.Resets.UpdatePassword(ctx, token, newPassword)
}
