package payroll

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/payroll"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/policy"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
	"github.com/staffdesk/staffdesk-backend-go/internal/repository/postgresql"
)

const pageSize = 10

type PayrollServiceImpl struct {
	db           postgresql.TxBeginner
	repo         payroll.Repository
	employeeRepo employee.Repository
	policyRepo   policy.Repository

	now func() time.Time
}

func NewPayrollService(db *database.DB, repo payroll.Repository, employeeRepo employee.Repository, policyRepo policy.Repository) payroll.Service {
	return &PayrollServiceImpl{
		db:           db,
		repo:         repo,
		employeeRepo: employeeRepo,
		policyRepo:   policyRepo,
		now:          time.Now,
	}
}

// resolvePeriod defaults a zero month/year pair to the previous calendar
// month.
func (s *PayrollServiceImpl) resolvePeriod(month, year int) (int, int, error) {
	if month == 0 && year == 0 {
		prev := s.now().AddDate(0, -1, 0)
		return int(prev.Month()), prev.Year(), nil
	}
	if month < 1 || month > 12 || year < 1 {
		return 0, 0, payroll.ErrInvalidPeriod
	}
	return month, year, nil
}

// Compute implements payroll.Service. The whole month is written as one
// batch; the unique period constraint rejects a concurrent duplicate run.
func (s *PayrollServiceImpl) Compute(ctx context.Context, month, year int) (payroll.ComputeResponse, error) {
	month, year, err := s.resolvePeriod(month, year)
	if err != nil {
		return payroll.ComputeResponse{}, err
	}

	exists, err := s.repo.ExistsForPeriod(ctx, month, year)
	if err != nil {
		return payroll.ComputeResponse{}, err
	}
	if exists {
		return payroll.ComputeResponse{}, payroll.ErrAlreadyProcessed
	}

	params, err := s.policyRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, policy.ErrParametersNotFound) {
			return payroll.ComputeResponse{}, payroll.ErrPolicyNotConfigured
		}
		return payroll.ComputeResponse{}, err
	}

	employees, err := s.employeeRepo.ListAll(ctx)
	if err != nil {
		return payroll.ComputeResponse{}, err
	}
	if len(employees) == 0 {
		return payroll.ComputeResponse{}, payroll.ErrNoEmployees
	}

	days, err := s.repo.ListAttendanceDays(ctx, month, year)
	if err != nil {
		return payroll.ComputeResponse{}, err
	}
	if len(days) == 0 {
		return payroll.ComputeResponse{}, payroll.ErrNoAttendanceForMonth
	}

	summaries := summarize(days)

	// Employees without a single attendance record that month are skipped.
	records := make([]payroll.Record, 0, len(summaries))
	for _, e := range employees {
		sum, ok := summaries[e.ID]
		if !ok {
			continue
		}
		records = append(records, computeRecord(e.ID, month, year, e.BaseSalary, *sum, params))
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		return s.repo.CreateBatch(txCtx, records)
	})
	if err != nil {
		return payroll.ComputeResponse{}, err
	}

	return payroll.ComputeResponse{
		Month:              month,
		Year:               year,
		EmployeesProcessed: len(records),
	}, nil
}

// List implements payroll.Service.
func (s *PayrollServiceImpl) List(ctx context.Context, filter payroll.Filter) (payroll.ListRecordsResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}

	records, total, err := s.repo.List(ctx, filter, pageSize)
	if err != nil {
		return payroll.ListRecordsResponse{}, err
	}

	data := make([]payroll.RecordResponse, 0, len(records))
	for _, rec := range records {
		data = append(data, payroll.NewRecordResponse(rec))
	}

	totalPages := int((total + pageSize - 1) / pageSize)

	return payroll.ListRecordsResponse{
		TotalPages:  totalPages,
		CurrentPage: filter.Page,
		Data:        data,
	}, nil
}

// Detail implements payroll.Service.
func (s *PayrollServiceImpl) Detail(ctx context.Context, employeeID int64, month, year int) (payroll.DetailResponse, error) {
	month, year, err := s.resolvePeriod(month, year)
	if err != nil {
		return payroll.DetailResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return payroll.DetailResponse{}, err
	}

	days, err := s.repo.ListAttendanceDaysForEmployee(ctx, employeeID, month, year)
	if err != nil {
		return payroll.DetailResponse{}, err
	}
	if len(days) == 0 {
		return payroll.DetailResponse{}, payroll.ErrNoAttendanceForMonth
	}

	sum := summarize(days)[employeeID]

	return payroll.DetailResponse{
		TotalOvertimeHours:   sum.overtimeHours,
		LateDays:             sum.lateDays,
		LeaveDays:            sum.leaveDays,
		UnexcusedAbsenceDays: sum.absentDays,
	}, nil
}
