package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

// ========== OVERTIME REQUESTS ==========

type overtimeRequestRepository struct {
	db *database.DB
}

func NewOvertimeRequestRepository(db *database.DB) attendance.OvertimeRequestRepository {
	return &overtimeRequestRepository{db: db}
}

const overtimeRequestColumns = `
	r.id, r.attendance_record_id, r.status,
	ar.employee_id, e.full_name AS employee_name, ar.date
`

const overtimeRequestJoins = `
	FROM overtime_requests r
	JOIN attendance_records ar ON r.attendance_record_id = ar.id
	JOIN employees e ON ar.employee_id = e.id
`

func scanOvertimeRequest(row pgx.Row) (attendance.OvertimeRequest, error) {
	var req attendance.OvertimeRequest
	var status string
	err := row.Scan(
		&req.ID, &req.AttendanceRecordID, &status,
		&req.EmployeeID, &req.EmployeeName, &req.Date,
	)
	if err != nil {
		return attendance.OvertimeRequest{}, err
	}
	req.Status = attendance.RequestStatus(status)
	return req, nil
}

func (r *overtimeRequestRepository) Create(ctx context.Context, attendanceRecordID int64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtime_requests (attendance_record_id, status)
		VALUES ($1, $2)
	`

	_, err := q.Exec(ctx, query, attendanceRecordID, string(attendance.RequestStatusPending))
	if err != nil {
		if strings.Contains(err.Error(), "overtime_requests_attendance_record_id_key") {
			return attendance.ErrOvertimeRequestExists
		}
		return fmt.Errorf("failed to create overtime request: %w", err)
	}

	return nil
}

func (r *overtimeRequestRepository) GetByRecordID(ctx context.Context, attendanceRecordID int64) (attendance.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + overtimeRequestColumns + overtimeRequestJoins + `WHERE r.attendance_record_id = $1`

	req, err := scanOvertimeRequest(q.QueryRow(ctx, query, attendanceRecordID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.OvertimeRequest{}, attendance.ErrOvertimeRequestNotFound
		}
		return attendance.OvertimeRequest{}, fmt.Errorf("failed to get overtime request: %w", err)
	}

	return req, nil
}

func (r *overtimeRequestRepository) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (attendance.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + overtimeRequestColumns + overtimeRequestJoins + `WHERE ar.employee_id = $1 AND ar.date = $2`

	req, err := scanOvertimeRequest(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.OvertimeRequest{}, attendance.ErrOvertimeRequestNotFound
		}
		return attendance.OvertimeRequest{}, fmt.Errorf("failed to get overtime request: %w", err)
	}

	return req, nil
}

func (r *overtimeRequestRepository) UpdateStatus(ctx context.Context, id int64, status attendance.RequestStatus) error {
	q := GetQuerier(ctx, r.db)

	var updatedID int64
	err := q.QueryRow(ctx, `UPDATE overtime_requests SET status = $2 WHERE id = $1 RETURNING id`, id, string(status)).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrOvertimeRequestNotFound
		}
		return fmt.Errorf("failed to update overtime request: %w", err)
	}

	return nil
}

func (r *overtimeRequestRepository) ListByStatus(ctx context.Context, status attendance.RequestStatus) ([]attendance.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + overtimeRequestColumns + overtimeRequestJoins + `WHERE r.status = $1 ORDER BY ar.date, ar.employee_id`

	rows, err := q.Query(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime requests: %w", err)
	}
	defer rows.Close()

	var requests []attendance.OvertimeRequest
	for rows.Next() {
		req, err := scanOvertimeRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overtime request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, nil
}

func (r *overtimeRequestRepository) ListByEmployeeAndStatus(ctx context.Context, employeeID int64, status attendance.RequestStatus) ([]attendance.OvertimeRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + overtimeRequestColumns + overtimeRequestJoins + `WHERE ar.employee_id = $1 AND r.status = $2 ORDER BY ar.date`

	rows, err := q.Query(ctx, query, employeeID, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime requests: %w", err)
	}
	defer rows.Close()

	var requests []attendance.OvertimeRequest
	for rows.Next() {
		req, err := scanOvertimeRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overtime request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, nil
}

func (r *overtimeRequestRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	var deletedID int64
	err := q.QueryRow(ctx, `DELETE FROM overtime_requests WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrOvertimeRequestNotFound
		}
		return fmt.Errorf("failed to delete overtime request: %w", err)
	}

	return nil
}

// ========== FORGOTTEN CHECK-OUT REQUESTS ==========

type forgottenCheckoutRequestRepository struct {
	db *database.DB
}

func NewForgottenCheckoutRequestRepository(db *database.DB) attendance.ForgottenCheckoutRequestRepository {
	return &forgottenCheckoutRequestRepository{db: db}
}

const forgottenCheckoutRequestColumns = `
	r.id, r.attendance_record_id, r.reason, r.status,
	ar.employee_id, e.full_name AS employee_name, ar.date
`

const forgottenCheckoutRequestJoins = `
	FROM forgotten_checkout_requests r
	JOIN attendance_records ar ON r.attendance_record_id = ar.id
	JOIN employees e ON ar.employee_id = e.id
`

func scanForgottenCheckoutRequest(row pgx.Row) (attendance.ForgottenCheckoutRequest, error) {
	var req attendance.ForgottenCheckoutRequest
	var status string
	err := row.Scan(
		&req.ID, &req.AttendanceRecordID, &req.Reason, &status,
		&req.EmployeeID, &req.EmployeeName, &req.Date,
	)
	if err != nil {
		return attendance.ForgottenCheckoutRequest{}, err
	}
	req.Status = attendance.RequestStatus(status)
	return req, nil
}

func (r *forgottenCheckoutRequestRepository) Create(ctx context.Context, attendanceRecordID int64, reason *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO forgotten_checkout_requests (attendance_record_id, reason, status)
		VALUES ($1, $2, $3)
	`

	_, err := q.Exec(ctx, query, attendanceRecordID, reason, string(attendance.RequestStatusPending))
	if err != nil {
		if strings.Contains(err.Error(), "forgotten_checkout_requests_attendance_record_id_key") {
			return attendance.ErrForgottenCheckoutRequestExists
		}
		return fmt.Errorf("failed to create forgotten checkout request: %w", err)
	}

	return nil
}

func (r *forgottenCheckoutRequestRepository) GetByRecordID(ctx context.Context, attendanceRecordID int64) (attendance.ForgottenCheckoutRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + forgottenCheckoutRequestColumns + forgottenCheckoutRequestJoins + `WHERE r.attendance_record_id = $1`

	req, err := scanForgottenCheckoutRequest(q.QueryRow(ctx, query, attendanceRecordID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ForgottenCheckoutRequest{}, attendance.ErrForgottenCheckoutRequestNotFound
		}
		return attendance.ForgottenCheckoutRequest{}, fmt.Errorf("failed to get forgotten checkout request: %w", err)
	}

	return req, nil
}

func (r *forgottenCheckoutRequestRepository) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (attendance.ForgottenCheckoutRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + forgottenCheckoutRequestColumns + forgottenCheckoutRequestJoins + `WHERE ar.employee_id = $1 AND ar.date = $2`

	req, err := scanForgottenCheckoutRequest(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ForgottenCheckoutRequest{}, attendance.ErrForgottenCheckoutRequestNotFound
		}
		return attendance.ForgottenCheckoutRequest{}, fmt.Errorf("failed to get forgotten checkout request: %w", err)
	}

	return req, nil
}

func (r *forgottenCheckoutRequestRepository) UpdateStatus(ctx context.Context, id int64, status attendance.RequestStatus) error {
	q := GetQuerier(ctx, r.db)

	var updatedID int64
	err := q.QueryRow(ctx, `UPDATE forgotten_checkout_requests SET status = $2 WHERE id = $1 RETURNING id`, id, string(status)).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrForgottenCheckoutRequestNotFound
		}
		return fmt.Errorf("failed to update forgotten checkout request: %w", err)
	}

	return nil
}

func (r *forgottenCheckoutRequestRepository) ListByStatus(ctx context.Context, status attendance.RequestStatus) ([]attendance.ForgottenCheckoutRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + forgottenCheckoutRequestColumns + forgottenCheckoutRequestJoins + `WHERE r.status = $1 ORDER BY ar.date, ar.employee_id`

	rows, err := q.Query(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to list forgotten checkout requests: %w", err)
	}
	defer rows.Close()

	var requests []attendance.ForgottenCheckoutRequest
	for rows.Next() {
		req, err := scanForgottenCheckoutRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan forgotten checkout request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, nil
}

func (r *forgottenCheckoutRequestRepository) ListByEmployeeAndStatus(ctx context.Context, employeeID int64, status attendance.RequestStatus) ([]attendance.ForgottenCheckoutRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + forgottenCheckoutRequestColumns + forgottenCheckoutRequestJoins + `WHERE ar.employee_id = $1 AND r.status = $2 ORDER BY ar.date`

	rows, err := q.Query(ctx, query, employeeID, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to list forgotten checkout requests: %w", err)
	}
	defer rows.Close()

	var requests []attendance.ForgottenCheckoutRequest
	for rows.Next() {
		req, err := scanForgottenCheckoutRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan forgotten checkout request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, nil
}

func (r *forgottenCheckoutRequestRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	var deletedID int64
	err := q.QueryRow(ctx, `DELETE FROM forgotten_checkout_requests WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrForgottenCheckoutRequestNotFound
		}
		return fmt.Errorf("failed to delete forgotten checkout request: %w", err)
	}

	return nil
}

// ========== LEAVE REQUESTS ==========

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) attendance.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

const leaveRequestColumns = `
	r.id, r.attendance_record_id, r.reason, r.status,
	ar.employee_id, e.full_name AS employee_name, ar.date
`

const leaveRequestJoins = `
	FROM leave_requests r
	JOIN attendance_records ar ON r.attendance_record_id = ar.id
	JOIN employees e ON ar.employee_id = e.id
`

func scanLeaveRequest(row pgx.Row) (attendance.LeaveRequest, error) {
	var req attendance.LeaveRequest
	var status string
	err := row.Scan(
		&req.ID, &req.AttendanceRecordID, &req.Reason, &status,
		&req.EmployeeID, &req.EmployeeName, &req.Date,
	)
	if err != nil {
		return attendance.LeaveRequest{}, err
	}
	req.Status = attendance.RequestStatus(status)
	return req, nil
}

func (r *leaveRequestRepository) Create(ctx context.Context, attendanceRecordID int64, reason *string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (attendance_record_id, reason, status)
		VALUES ($1, $2, $3)
	`

	_, err := q.Exec(ctx, query, attendanceRecordID, reason, string(attendance.RequestStatusPending))
	if err != nil {
		if strings.Contains(err.Error(), "leave_requests_attendance_record_id_key") {
			return attendance.ErrLeaveRequestExists
		}
		return fmt.Errorf("failed to create leave request: %w", err)
	}

	return nil
}

func (r *leaveRequestRepository) GetByRecordID(ctx context.Context, attendanceRecordID int64) (attendance.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + leaveRequestJoins + `WHERE r.attendance_record_id = $1`

	req, err := scanLeaveRequest(q.QueryRow(ctx, query, attendanceRecordID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.LeaveRequest{}, attendance.ErrLeaveRequestNotFound
		}
		return attendance.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

func (r *leaveRequestRepository) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (attendance.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + leaveRequestJoins + `WHERE ar.employee_id = $1 AND ar.date = $2`

	req, err := scanLeaveRequest(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.LeaveRequest{}, attendance.ErrLeaveRequestNotFound
		}
		return attendance.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return req, nil
}

func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, id int64, status attendance.RequestStatus) error {
	q := GetQuerier(ctx, r.db)

	var updatedID int64
	err := q.QueryRow(ctx, `UPDATE leave_requests SET status = $2 WHERE id = $1 RETURNING id`, id, string(status)).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrLeaveRequestNotFound
		}
		return fmt.Errorf("failed to update leave request: %w", err)
	}

	return nil
}

func (r *leaveRequestRepository) ListByStatus(ctx context.Context, status attendance.RequestStatus) ([]attendance.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + leaveRequestJoins + `WHERE r.status = $1 ORDER BY ar.date, ar.employee_id`

	rows, err := q.Query(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []attendance.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, nil
}

func (r *leaveRequestRepository) ListByEmployeeAndStatus(ctx context.Context, employeeID int64, status attendance.RequestStatus) ([]attendance.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveRequestColumns + leaveRequestJoins + `WHERE ar.employee_id = $1 AND r.status = $2 ORDER BY ar.date`

	rows, err := q.Query(ctx, query, employeeID, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []attendance.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, nil
}

func (r *leaveRequestRepository) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	var deletedID int64
	err := q.QueryRow(ctx, `DELETE FROM leave_requests WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrLeaveRequestNotFound
		}
		return fmt.Errorf("failed to delete leave request: %w", err)
	}

	return nil
}
