package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/auth"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	adminRepo    auth.AdminRepository
	employeeRepo employee.Repository
	jwtService   jwt.Service
}

func NewAuthService(adminRepo auth.AdminRepository, employeeRepo employee.Repository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		adminRepo:    adminRepo,
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
	}
}

// Login implements auth.AuthService. Admin accounts shadow employee accounts
// with the same username; the error is identical for an unknown username and
// a wrong password.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	admin, err := a.adminRepo.GetByUsername(ctx, req.Username)
	if err == nil {
		if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return a.issueToken(admin.ID, admin.Username, auth.RoleAdmin)
	}
	if !errors.Is(err, auth.ErrAccountNotFound) {
		return auth.LoginResponse{}, fmt.Errorf("failed to look up admin: %w", err)
	}

	emp, err := a.employeeRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)) != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueToken(emp.ID, emp.Username, auth.RoleEmployee)
}

func (a *AuthServiceImpl) issueToken(subjectID int64, username string, role auth.Role) (auth.LoginResponse, error) {
	token, expiresAt, err := a.jwtService.GenerateAccessToken(subjectID, username, role)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return auth.LoginResponse{
		Token:     token,
		Role:      string(role),
		ExpiresAt: expiresAt,
	}, nil
}

// ChangeAdminPassword implements auth.AuthService.
func (a *AuthServiceImpl) ChangeAdminPassword(ctx context.Context, identity auth.Identity, req auth.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if req.NewPassword != req.ConfirmPassword {
		return auth.ErrPasswordConfirmMismatch
	}

	admin, err := a.adminRepo.GetByID(ctx, identity.SubjectID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.OldPassword)) != nil {
		return auth.ErrWrongOldPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return a.adminRepo.UpdatePassword(ctx, admin.ID, string(hash))
}
