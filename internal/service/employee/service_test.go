package employee

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestGenerateUsername(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		phone    string
		want     string
	}{
		{"plain ascii", "Jane Doe", "081234567890", "janedoe081234567890"},
		{"diacritics stripped", "Nguyễn Văn Hùng", "0912345678", "nguyenvanhung0912345678"},
		{"punctuation dropped", "O'Brien, Jr.", "0811111111", "obrienjr0811111111"},
		{"mixed case", "ANA maria", "0822222222", "anamaria0822222222"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, generateUsername(tt.fullName, tt.phone))
		})
	}
}

type fakeRepo struct {
	employees   map[int64]employee.Employee
	departments map[int64]employee.Department
	nextID      int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		employees:   make(map[int64]employee.Employee),
		departments: map[int64]employee.Department{1: {ID: 1, Name: "Engineering"}},
		nextID:      1,
	}
}

func (f *fakeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	emp.ID = f.nextID
	f.employees[emp.ID] = emp
	f.nextID++
	return emp, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeRepo) GetByUsername(ctx context.Context, username string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Username == username {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeRepo) List(ctx context.Context, filter employee.Filter, pageSize int) ([]employee.Employee, int64, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepo) ListAll(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeRepo) Update(ctx context.Context, emp employee.Employee) error {
	if _, ok := f.employees[emp.ID]; !ok {
		return employee.ErrEmployeeNotFound
	}
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakeRepo) UpdateContact(ctx context.Context, id int64, email, phone string) error {
	emp, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.Email = email
	emp.Phone = phone
	f.employees[id] = emp
	return nil
}

func (f *fakeRepo) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	for _, emp := range f.employees {
		if emp.Email == email && emp.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) PhoneExists(ctx context.Context, phone string, excludeID int64) (bool, error) {
	for _, emp := range f.employees {
		if emp.Phone == phone && emp.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(f.employees, id)
	return nil
}

func (f *fakeRepo) GetDepartmentByID(ctx context.Context, id int64) (employee.Department, error) {
	dept, ok := f.departments[id]
	if !ok {
		return employee.Department{}, employee.ErrDepartmentNotFound
	}
	return dept, nil
}

func (f *fakeRepo) GetDepartmentByName(ctx context.Context, name string) (employee.Department, error) {
	for _, dept := range f.departments {
		if dept.Name == name {
			return dept, nil
		}
	}
	return employee.Department{}, employee.ErrDepartmentNotFound
}

func (f *fakeRepo) ListDepartments(ctx context.Context) ([]employee.Department, error) {
	var out []employee.Department
	for _, dept := range f.departments {
		out = append(out, dept)
	}
	return out, nil
}

func createRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FullName:     "Jane Doe",
		DateOfBirth:  "1990-04-02",
		Gender:       "female",
		Phone:        "081234567890",
		Email:        "jane@corp.test",
		DepartmentID: 1,
		Position:     "Engineer",
		BaseSalary:   decimal.NewFromInt(5000000),
	}
}

func TestCreateEmployee(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEmployeeService(repo)

	resp, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	assert.Equal(t, "1990-04-02", resp.DateOfBirth)
	assert.Equal(t, "Engineering", resp.Department)

	stored, err := repo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "janedoe081234567890", stored.Username)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(defaultPassword)))
}

func TestCreateEmployeeInvalidDateOfBirth(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEmployeeService(repo)

	req := createRequest()
	req.DateOfBirth = "02-04-1990"

	_, err := svc.Create(context.Background(), req)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "date_of_birth")
}

func TestCreateEmployeeDuplicateEmail(t *testing.T) {
	repo := newFakeRepo()
	svc := NewEmployeeService(repo)

	_, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	dup := createRequest()
	dup.Phone = "089999999999"
	_, err = svc.Create(context.Background(), dup)
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}
