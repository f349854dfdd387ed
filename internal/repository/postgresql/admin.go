package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/auth"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type adminRepository struct {
	db *database.DB
}

func NewAdminRepository(db *database.DB) auth.AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (auth.Admin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, username, password_hash
		FROM admins
		WHERE username = $1
	`

	var a auth.Admin
	err := q.QueryRow(ctx, query, username).Scan(&a.ID, &a.Username, &a.PasswordHash)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.Admin{}, auth.ErrAccountNotFound
		}
		return auth.Admin{}, fmt.Errorf("failed to get admin: %w", err)
	}

	return a, nil
}

func (r *adminRepository) GetByID(ctx context.Context, id int64) (auth.Admin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, username, password_hash
		FROM admins
		WHERE id = $1
	`

	var a auth.Admin
	err := q.QueryRow(ctx, query, id).Scan(&a.ID, &a.Username, &a.PasswordHash)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.Admin{}, auth.ErrAccountNotFound
		}
		return auth.Admin{}, fmt.Errorf("failed to get admin: %w", err)
	}

	return a, nil
}

func (r *adminRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE admins SET password_hash = $2 WHERE id = $1 RETURNING id`

	var updatedID int64
	err := q.QueryRow(ctx, query, id, passwordHash).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return auth.ErrAccountNotFound
		}
		return fmt.Errorf("failed to update admin password: %w", err)
	}

	return nil
}
