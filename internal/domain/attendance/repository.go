package attendance

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Repository defines data access for attendance records. Mutations that are
// part of a multi-record workflow run inside a transaction passed through the
// context by the service layer.
type Repository interface {
	// BulkCreate inserts one seeded record per employee for a date.
	BulkCreate(ctx context.Context, records []Record) error

	// GetByEmployeeAndDate returns the record for (employeeID, date) or
	// ErrRecordNotFound.
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (Record, error)

	// GetByID returns a record by primary key or ErrRecordNotFound.
	GetByID(ctx context.Context, id int64) (Record, error)

	// ListByDate returns all records for a date with employee names joined.
	ListByDate(ctx context.Context, date time.Time) ([]Record, error)

	// DeleteByDate removes every record for a date and returns how many.
	DeleteByDate(ctx context.Context, date time.Time) (int64, error)

	// Update persists check-in/out times, status, and overtime fields.
	Update(ctx context.Context, rec Record) error

	// SetCheckIn records the arrival time, guarded at the database so that of
	// two concurrent check-ins only one lands; the loser gets
	// ErrAlreadyCheckedIn.
	SetCheckIn(ctx context.Context, id int64, checkIn TimeOfDay) error

	// SetCheckOut closes the day with its final classification, guarded the
	// same way; a record already closed (or never checked in) gets
	// ErrAlreadyCheckedOut.
	SetCheckOut(ctx context.Context, id int64, checkOut TimeOfDay, status Status, overtimeHours decimal.Decimal) error
}

// OvertimeRequestRepository manages the 0..1 overtime request per record.
type OvertimeRequestRepository interface {
	Create(ctx context.Context, attendanceRecordID int64) error
	GetByRecordID(ctx context.Context, attendanceRecordID int64) (OvertimeRequest, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (OvertimeRequest, error)
	UpdateStatus(ctx context.Context, id int64, status RequestStatus) error
	ListByStatus(ctx context.Context, status RequestStatus) ([]OvertimeRequest, error)
	ListByEmployeeAndStatus(ctx context.Context, employeeID int64, status RequestStatus) ([]OvertimeRequest, error)
	Delete(ctx context.Context, id int64) error
}

// ForgottenCheckoutRequestRepository manages forgotten check-out reports.
type ForgottenCheckoutRequestRepository interface {
	Create(ctx context.Context, attendanceRecordID int64, reason *string) error
	GetByRecordID(ctx context.Context, attendanceRecordID int64) (ForgottenCheckoutRequest, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (ForgottenCheckoutRequest, error)
	UpdateStatus(ctx context.Context, id int64, status RequestStatus) error
	ListByStatus(ctx context.Context, status RequestStatus) ([]ForgottenCheckoutRequest, error)
	ListByEmployeeAndStatus(ctx context.Context, employeeID int64, status RequestStatus) ([]ForgottenCheckoutRequest, error)
	Delete(ctx context.Context, id int64) error
}

// LeaveRequestRepository manages leave requests.
type LeaveRequestRepository interface {
	Create(ctx context.Context, attendanceRecordID int64, reason *string) error
	GetByRecordID(ctx context.Context, attendanceRecordID int64) (LeaveRequest, error)
	GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (LeaveRequest, error)
	UpdateStatus(ctx context.Context, id int64, status RequestStatus) error
	ListByStatus(ctx context.Context, status RequestStatus) ([]LeaveRequest, error)
	ListByEmployeeAndStatus(ctx context.Context, employeeID int64, status RequestStatus) ([]LeaveRequest, error)
	Delete(ctx context.Context, id int64) error
}
