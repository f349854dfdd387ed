package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

// check_in and check_out are stored as integer minutes since midnight.
func minutesToTimeOfDay(v *int) *attendance.TimeOfDay {
	if v == nil {
		return nil
	}
	t := attendance.TimeOfDay(*v)
	return &t
}

func timeOfDayToMinutes(t *attendance.TimeOfDay) *int {
	if t == nil {
		return nil
	}
	v := int(*t)
	return &v
}

func stringToStatus(v *string) *attendance.Status {
	if v == nil {
		return nil
	}
	s := attendance.Status(*v)
	return &s
}

func statusToString(s *attendance.Status) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}

func scanAttendanceRecord(row pgx.Row, withName bool) (attendance.Record, error) {
	var rec attendance.Record
	var checkIn, checkOut *int
	var status *string

	dest := []interface{}{
		&rec.ID, &rec.EmployeeID, &rec.Date, &checkIn, &checkOut,
		&status, &rec.OvertimeApproved, &rec.OvertimeHours,
	}
	if withName {
		dest = append(dest, &rec.EmployeeName)
	}

	if err := row.Scan(dest...); err != nil {
		return attendance.Record{}, err
	}

	rec.CheckIn = minutesToTimeOfDay(checkIn)
	rec.CheckOut = minutesToTimeOfDay(checkOut)
	rec.Status = stringToStatus(status)
	return rec, nil
}

func (r *attendanceRepository) BulkCreate(ctx context.Context, records []attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_records (employee_id, date, check_in, check_out, status, overtime_approved, overtime_hours)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	for _, rec := range records {
		_, err := q.Exec(ctx, query,
			rec.EmployeeID, rec.Date,
			timeOfDayToMinutes(rec.CheckIn), timeOfDayToMinutes(rec.CheckOut),
			statusToString(rec.Status), rec.OvertimeApproved, rec.OvertimeHours,
		)
		if err != nil {
			return fmt.Errorf("failed to create attendance record: %w", err)
		}
	}

	return nil
}

func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, check_in, check_out, status, overtime_approved, overtime_hours
		FROM attendance_records
		WHERE employee_id = $1 AND date = $2
	`

	rec, err := scanAttendanceRecord(q.QueryRow(ctx, query, employeeID, date), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return rec, nil
}

func (r *attendanceRepository) GetByID(ctx context.Context, id int64) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, check_in, check_out, status, overtime_approved, overtime_hours
		FROM attendance_records
		WHERE id = $1
	`

	rec, err := scanAttendanceRecord(q.QueryRow(ctx, query, id), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return rec, nil
}

func (r *attendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ar.id, ar.employee_id, ar.date, ar.check_in, ar.check_out,
			   ar.status, ar.overtime_approved, ar.overtime_hours,
			   e.full_name AS employee_name
		FROM attendance_records ar
		JOIN employees e ON ar.employee_id = e.id
		WHERE ar.date = $1
		ORDER BY ar.employee_id
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		rec, err := scanAttendanceRecord(rows, true)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func (r *attendanceRepository) DeleteByDate(ctx context.Context, date time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE date = $1`, date)
	if err != nil {
		return 0, fmt.Errorf("failed to delete attendance records: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *attendanceRepository) Update(ctx context.Context, rec attendance.Record) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET check_in = $2, check_out = $3, status = $4, overtime_approved = $5, overtime_hours = $6
		WHERE id = $1
		RETURNING id
	`

	var updatedID int64
	err := q.QueryRow(ctx, query,
		rec.ID,
		timeOfDayToMinutes(rec.CheckIn), timeOfDayToMinutes(rec.CheckOut),
		statusToString(rec.Status), rec.OvertimeApproved, rec.OvertimeHours,
	).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("failed to update attendance record: %w", err)
	}

	return nil
}

// The check_in IS NULL guard makes the write atomic: two racing check-ins
// both pass the service's read, but only one row update lands.
func (r *attendanceRepository) SetCheckIn(ctx context.Context, id int64, checkIn attendance.TimeOfDay) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET check_in = $2
		WHERE id = $1 AND check_in IS NULL
	`

	tag, err := q.Exec(ctx, query, id, int(checkIn))
	if err != nil {
		return fmt.Errorf("failed to set check-in: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAlreadyCheckedIn
	}

	return nil
}

func (r *attendanceRepository) SetCheckOut(ctx context.Context, id int64, checkOut attendance.TimeOfDay, status attendance.Status, overtimeHours decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_records
		SET check_out = $2, status = $3, overtime_hours = $4
		WHERE id = $1 AND check_in IS NOT NULL AND check_out IS NULL
	`

	tag, err := q.Exec(ctx, query, id, int(checkOut), string(status), overtimeHours)
	if err != nil {
		return fmt.Errorf("failed to set check-out: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAlreadyCheckedOut
	}

	return nil
}
