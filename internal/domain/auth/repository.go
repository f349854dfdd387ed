package auth

import "context"

type AdminRepository interface {
	// GetByUsername returns ErrAccountNotFound when absent.
	GetByUsername(ctx context.Context, username string) (Admin, error)

	// GetByID returns ErrAccountNotFound when absent.
	GetByID(ctx context.Context, id int64) (Admin, error)

	// UpdatePassword replaces the stored bcrypt hash.
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}
