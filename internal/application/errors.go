package application

import "errors"

var (
	// ErrInvalidInput flags a missing or empty required field.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidCredentials is returned by Login when the email/password
	// pair does not check out. It deliberately does not distinguish an
	// unknown email from a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken is returned when a reset token matches no user,
	// including a token that was already consumed.
	ErrInvalidToken = errors.New("invalid reset token")
)
