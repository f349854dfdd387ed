package auth

import "errors"

// Auth domain errors
var (
	ErrInvalidCredentials      = errors.New("invalid username or password")
	ErrInvalidToken            = errors.New("invalid or missing token")
	ErrAdminAccessRequired     = errors.New("admin role required for this operation")
	ErrEmployeeAccessRequired  = errors.New("employee role required for this operation")
	ErrAccountNotFound         = errors.New("account not found")
	ErrWrongOldPassword        = errors.New("old password is incorrect")
	ErrPasswordConfirmMismatch = errors.New("new password and confirmation do not match")
)
