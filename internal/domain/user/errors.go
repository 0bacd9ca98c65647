package user

import "errors"

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email is already registered")

	// ErrInvalidResetToken covers wrong, expired and already-consumed
	// reset tokens alike. The cases must stay indistinguishable.
	ErrInvalidResetToken = errors.New("invalid or expired reset token")
)
