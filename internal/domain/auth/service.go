package auth

import "context"

type AuthService interface {
	// Login verifies a credential pair against admin accounts first, then
	// employees, and issues an access token on success.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// ChangeAdminPassword rotates the acting admin's own password.
	ChangeAdminPassword(ctx context.Context, identity Identity, req ChangePasswordRequest) error
}
