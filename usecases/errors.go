package usecases

import "errors"

var (
	ErrUnauthorized         = errors.New("unauthorized")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrRoleMismatch         = errors.New("selected role does not match stored role")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrEmailTaken           = errors.New("email already registered")
	ErrWeakPassword         = errors.New("password too short")
	ErrInvalidRole          = errors.New("invalid role")
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidArea          = errors.New("area must be a positive number")
	ErrNotFound             = errors.New("not found")
	ErrCounterpartyNotFound = errors.New("counterparty not found")
	ErrForbidden            = errors.New("forbidden")
	ErrDemoForbidden        = errors.New("not available in demo mode")
	ErrResetFailed          = errors.New("password reset failed")
	ErrResetTokenInvalid    = errors.New("reset token invalid or expired")
)
