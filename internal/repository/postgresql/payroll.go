package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/payroll"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.Repository {
	return &payrollRepository{db: db}
}

func (r *payrollRepository) CreateBatch(ctx context.Context, records []payroll.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_records (employee_id, month, year, base_salary, overtime_pay, total_penalty, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	for _, rec := range records {
		_, err := q.Exec(ctx, query,
			rec.EmployeeID, rec.Month, rec.Year,
			rec.BaseSalary, rec.OvertimePay, rec.TotalPenalty, rec.Total,
		)
		if err != nil {
			if strings.Contains(err.Error(), "payroll_records_employee_id_month_year_key") {
				return payroll.ErrAlreadyProcessed
			}
			return fmt.Errorf("failed to create payroll record: %w", err)
		}
	}

	return nil
}

func (r *payrollRepository) ExistsForPeriod(ctx context.Context, month, year int) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM payroll_records WHERE month = $1 AND year = $2)`
	if err := q.QueryRow(ctx, query, month, year).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check payroll period: %w", err)
	}

	return exists, nil
}

func (r *payrollRepository) List(ctx context.Context, filter payroll.Filter, pageSize int) ([]payroll.Record, int64, error) {
	q := GetQuerier(ctx, r.db)

	baseQuery := `
		FROM payroll_records pr
		JOIN employees e ON pr.employee_id = e.id
		WHERE 1=1
	`
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil {
		baseQuery += fmt.Sprintf(" AND pr.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Name != nil {
		baseQuery += fmt.Sprintf(" AND e.full_name ILIKE $%d", argIdx)
		args = append(args, "%"+*filter.Name+"%")
		argIdx++
	}
	if filter.Month != nil {
		baseQuery += fmt.Sprintf(" AND pr.month = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}
	if filter.Year != nil {
		baseQuery += fmt.Sprintf(" AND pr.year = $%d", argIdx)
		args = append(args, *filter.Year)
		argIdx++
	}

	var totalCount int64
	countQuery := "SELECT COUNT(*) " + baseQuery
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll records: %w", err)
	}

	page := filter.Page
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * pageSize

	selectQuery := fmt.Sprintf(`
		SELECT pr.id, pr.employee_id, pr.month, pr.year,
			   pr.base_salary, pr.overtime_pay, pr.total_penalty, pr.total,
			   e.full_name AS employee_name
		%s
		ORDER BY pr.year DESC, pr.month DESC, pr.employee_id
		LIMIT $%d OFFSET $%d
	`, baseQuery, argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		var rec payroll.Record
		if err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Month, &rec.Year,
			&rec.BaseSalary, &rec.OvertimePay, &rec.TotalPenalty, &rec.Total,
			&rec.EmployeeName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, totalCount, nil
}

func (r *payrollRepository) ListAttendanceDays(ctx context.Context, month, year int) ([]payroll.AttendanceDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, status, overtime_hours
		FROM attendance_records
		WHERE EXTRACT(MONTH FROM date) = $1 AND EXTRACT(YEAR FROM date) = $2
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance days: %w", err)
	}
	defer rows.Close()

	var days []payroll.AttendanceDay
	for rows.Next() {
		var d payroll.AttendanceDay
		if err := rows.Scan(&d.EmployeeID, &d.Status, &d.OvertimeHours); err != nil {
			return nil, fmt.Errorf("failed to scan attendance day: %w", err)
		}
		days = append(days, d)
	}

	return days, nil
}

func (r *payrollRepository) ListAttendanceDaysForEmployee(ctx context.Context, employeeID int64, month, year int) ([]payroll.AttendanceDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, status, overtime_hours
		FROM attendance_records
		WHERE employee_id = $1 AND EXTRACT(MONTH FROM date) = $2 AND EXTRACT(YEAR FROM date) = $3
	`

	rows, err := q.Query(ctx, query, employeeID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance days: %w", err)
	}
	defer rows.Close()

	var days []payroll.AttendanceDay
	for rows.Next() {
		var d payroll.AttendanceDay
		if err := rows.Scan(&d.EmployeeID, &d.Status, &d.OvertimeHours); err != nil {
			return nil, fmt.Errorf("failed to scan attendance day: %w", err)
		}
		days = append(days, d)
	}

	return days, nil
}
