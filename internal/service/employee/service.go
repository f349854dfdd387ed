package employee

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/auth"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	pageSize = 10

	// New accounts start with this password; employees are expected to have
	// it rotated out of band.
	defaultPassword = "12345678"
)

type EmployeeServiceImpl struct {
	repo employee.Repository
}

func NewEmployeeService(repo employee.Repository) employee.Service {
	return &EmployeeServiceImpl{repo: repo}
}

// generateUsername builds the login name from the diacritics-stripped,
// lowercased full name concatenated with the phone number.
func generateUsername(fullName, phone string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, fullName)
	if err != nil {
		stripped = fullName
	}

	var b strings.Builder
	for _, r := range strings.ToLower(stripped) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String() + phone
}

// Create implements employee.Service.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	dept, err := s.repo.GetDepartmentByID(ctx, req.DepartmentID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if exists, err := s.repo.EmailExists(ctx, req.Email, 0); err != nil {
		return employee.EmployeeResponse{}, err
	} else if exists {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}
	if exists, err := s.repo.PhoneExists(ctx, req.Phone, 0); err != nil {
		return employee.EmployeeResponse{}, err
	} else if exists {
		return employee.EmployeeResponse{}, employee.ErrPhoneExists
	}

	dateOfBirth, ok := validator.IsValidDate(req.DateOfBirth)
	if !ok {
		return employee.EmployeeResponse{}, validator.ValidationErrors{{
			Field:   "date_of_birth",
			Message: "date_of_birth must be in YYYY-MM-DD format",
		}}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	emp := employee.Employee{
		FullName:     req.FullName,
		Username:     generateUsername(req.FullName, req.Phone),
		PasswordHash: string(hash),
		DateOfBirth:  dateOfBirth,
		Gender:       employee.Gender(req.Gender),
		Phone:        req.Phone,
		Email:        req.Email,
		DepartmentID: req.DepartmentID,
		Position:     req.Position,
		HireDate:     time.Now(),
		BaseSalary:   req.BaseSalary,
	}

	created, err := s.repo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	created.DepartmentName = &dept.Name

	return employee.NewEmployeeResponse(created), nil
}

// Update implements employee.Service. The department is addressed by name so
// an admin can move an employee without looking up ids.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	dept, err := s.repo.GetDepartmentByName(ctx, req.DepartmentName)
	if err != nil {
		return err
	}

	emp.DepartmentID = dept.ID
	emp.Position = req.Position
	emp.BaseSalary = req.BaseSalary

	return s.repo.Update(ctx, emp)
}

// Delete implements employee.Service.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// List implements employee.Service.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.Filter) (employee.ListEmployeesResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}

	employees, total, err := s.repo.List(ctx, filter, pageSize)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}
	if len(employees) == 0 {
		return employee.ListEmployeesResponse{}, employee.ErrNoEmployeesFound
	}

	data := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		data = append(data, employee.NewEmployeeResponse(e))
	}

	totalPages := int((total + pageSize - 1) / pageSize)

	return employee.ListEmployeesResponse{
		TotalPages:  totalPages,
		CurrentPage: filter.Page,
		Data:        data,
	}, nil
}

// ListDepartments implements employee.Service.
func (s *EmployeeServiceImpl) ListDepartments(ctx context.Context) ([]employee.DepartmentResponse, error) {
	departments, err := s.repo.ListDepartments(ctx)
	if err != nil {
		return nil, err
	}

	data := make([]employee.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		data = append(data, employee.DepartmentResponse{ID: d.ID, Name: d.Name})
	}
	return data, nil
}

// GetOwnProfile implements employee.Service.
func (s *EmployeeServiceImpl) GetOwnProfile(ctx context.Context, identity auth.Identity) (employee.EmployeeResponse, error) {
	emp, err := s.repo.GetByID(ctx, identity.SubjectID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(emp), nil
}

// UpdateOwnContact implements employee.Service.
func (s *EmployeeServiceImpl) UpdateOwnContact(ctx context.Context, identity auth.Identity, req employee.UpdateContactRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if exists, err := s.repo.EmailExists(ctx, req.Email, identity.SubjectID); err != nil {
		return err
	} else if exists {
		return employee.ErrEmailExists
	}
	if exists, err := s.repo.PhoneExists(ctx, req.Phone, identity.SubjectID); err != nil {
		return err
	} else if exists {
		return employee.ErrPhoneExists
	}

	return s.repo.UpdateContact(ctx, identity.SubjectID, req.Email, req.Phone)
}
