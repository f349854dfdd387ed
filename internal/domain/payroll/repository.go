package payroll

import "context"

type Repository interface {
	// CreateBatch inserts a month's records as one atomic batch. The unique
	// (employee_id, month, year) constraint backstops concurrent runs.
	CreateBatch(ctx context.Context, records []Record) error

	// ExistsForPeriod reports whether any record exists for (month, year).
	ExistsForPeriod(ctx context.Context, month, year int) (bool, error)

	// List returns a filtered page (employee names joined) plus total count.
	List(ctx context.Context, filter Filter, pageSize int) ([]Record, int64, error)

	// ListAttendanceDays returns every attendance day in the month across all
	// employees, for the calculator.
	ListAttendanceDays(ctx context.Context, month, year int) ([]AttendanceDay, error)

	// ListAttendanceDaysForEmployee returns one employee's attendance days in
	// the month, for the on-demand detail breakdown.
	ListAttendanceDaysForEmployee(ctx context.Context, employeeID int64, month, year int) ([]AttendanceDay, error)
}
