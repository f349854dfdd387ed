package employee

import (
	"context"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/auth"
)

type Service interface {
	// Admin surface
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, id int64, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter Filter) (ListEmployeesResponse, error)
	ListDepartments(ctx context.Context) ([]DepartmentResponse, error)

	// Employee self-service
	GetOwnProfile(ctx context.Context, identity auth.Identity) (EmployeeResponse, error)
	UpdateOwnContact(ctx context.Context, identity auth.Identity, req UpdateContactRequest) error
}
