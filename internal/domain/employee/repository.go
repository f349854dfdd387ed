package employee

import "context"

type Repository interface {
	// Create inserts an employee and returns it with the generated id.
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID returns an employee (department name joined) or
	// ErrEmployeeNotFound.
	GetByID(ctx context.Context, id int64) (Employee, error)

	// GetByUsername is used by login; returns ErrEmployeeNotFound when absent.
	GetByUsername(ctx context.Context, username string) (Employee, error)

	// List returns a filtered page plus the total row count.
	List(ctx context.Context, filter Filter, pageSize int) ([]Employee, int64, error)

	// ListAll returns every employee; used for attendance seeding and payroll.
	ListAll(ctx context.Context) ([]Employee, error)

	// Update persists department, position, and base salary.
	Update(ctx context.Context, emp Employee) error

	// UpdateContact persists email and phone.
	UpdateContact(ctx context.Context, id int64, email, phone string) error

	// EmailExists reports whether another employee already uses the email.
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)

	// PhoneExists reports whether another employee already uses the phone.
	PhoneExists(ctx context.Context, phone string, excludeID int64) (bool, error)

	// Delete removes an employee; returns ErrEmployeeNotFound when absent.
	Delete(ctx context.Context, id int64) error

	// GetDepartmentByID returns ErrDepartmentNotFound when absent.
	GetDepartmentByID(ctx context.Context, id int64) (Department, error)

	// GetDepartmentByName returns ErrDepartmentNotFound when absent.
	GetDepartmentByName(ctx context.Context, name string) (Department, error)

	// ListDepartments returns all departments ordered by name.
	ListDepartments(ctx context.Context) ([]Department, error)
}
