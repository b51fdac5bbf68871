package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrNotFound               = errors.New("not found")
	ErrConflict               = errors.New("already exists")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrInvalidRefreshToken    = errors.New("invalid refresh token")
	ErrRefreshTokenExpired    = errors.New("refresh token expired")
	ErrMatchingUnavailable    = errors.New("matching temporarily unavailable")
	ErrAttachmentsUnavailable = errors.New("attachment storage unavailable")
	ErrInternal               = errors.New("internal error")
)

// invalidf wraps ErrInvalidInput with a message safe to show to the caller.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
