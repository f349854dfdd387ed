package payroll

import "github.com/shopspring/decimal"

// Record is one employee's finalized compensation for one (month, year),
// unique per period and immutable once written.
type Record struct {
	ID           int64
	EmployeeID   int64
	Month        int
	Year         int
	BaseSalary   decimal.Decimal
	OvertimePay  decimal.Decimal
	TotalPenalty decimal.Decimal
	Total        decimal.Decimal

	// Joined fields
	EmployeeName *string
}

// AttendanceDay is the slice of an attendance record the calculator needs:
// the resolved status (nil means the day was never resolved and counts as an
// unapproved absence) and accrued overtime hours.
type AttendanceDay struct {
	EmployeeID    int64
	Status        *string
	OvertimeHours decimal.Decimal
}

// Attendance status values as stored on attendance records.
const (
	DayStatusLate    = "late"
	DayStatusOnLeave = "on_leave"
)
