package employee

import (
	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName     string          `json:"full_name"`
	DateOfBirth  string          `json:"date_of_birth"`
	Gender       string          `json:"gender"`
	Phone        string          `json:"phone"`
	Email        string          `json:"email"`
	DepartmentID int64           `json:"department_id"`
	Position     string          `json:"position"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if _, ok := validator.IsValidDate(r.DateOfBirth); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date_of_birth",
			Message: "date_of_birth must be in YYYY-MM-DD format",
		})
	}
	if !validator.IsInSlice(r.Gender, []string{string(Male), string(Female)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "gender must be male or female",
		})
	}
	if !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone is not a valid phone number",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid email address",
		})
	}
	if r.DepartmentID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id is required",
		})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}
	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest is the admin update surface: assignment and pay.
type UpdateEmployeeRequest struct {
	DepartmentName string          `json:"department_name"`
	Position       string          `json:"position"`
	BaseSalary     decimal.Decimal `json:"base_salary"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DepartmentName) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_name",
			Message: "department_name is required",
		})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position is required",
		})
	}
	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateContactRequest is the employee self-service surface; both fields are
// globally unique across employees.
type UpdateContactRequest struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (r *UpdateContactRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not a valid email address",
		})
	}
	if !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone is not a valid phone number",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type Filter struct {
	EmployeeID   *int64
	Name         *string
	DepartmentID *int64
	Position     *string
	Page         int
}

type EmployeeResponse struct {
	ID          int64           `json:"id"`
	FullName    string          `json:"full_name"`
	DateOfBirth string          `json:"date_of_birth"`
	Gender      Gender          `json:"gender"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email"`
	Department  string          `json:"department"`
	Position    string          `json:"position"`
	HireDate    string          `json:"hire_date"`
	BaseSalary  decimal.Decimal `json:"base_salary"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	department := ""
	if e.DepartmentName != nil {
		department = *e.DepartmentName
	}
	return EmployeeResponse{
		ID:          e.ID,
		FullName:    e.FullName,
		DateOfBirth: e.DateOfBirth.Format("2006-01-02"),
		Gender:      e.Gender,
		Phone:       e.Phone,
		Email:       e.Email,
		Department:  department,
		Position:    e.Position,
		HireDate:    e.HireDate.Format("2006-01-02"),
		BaseSalary:  e.BaseSalary,
	}
}

type ListEmployeesResponse struct {
	TotalPages  int                `json:"total_pages"`
	CurrentPage int                `json:"current_page"`
	Data        []EmployeeResponse `json:"data"`
}

type DepartmentResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
