package attendance

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TimeOfDay is a minute-precision wall-clock time, stored as minutes since
// midnight. Attendance only ever cares about the time portion of a day.
type TimeOfDay int

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// TimeOfDayFromClock truncates t to minute precision.
func TimeOfDayFromClock(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Hour(), t.Minute())
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.Parse("15:04", s)
	if err != nil {
		return fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	*t = TimeOfDayFromClock(parsed)
	return nil
}

// Status classifies a finalized attendance day. A record with no status yet
// (nil) is unresolved; if it is still nil at month end it counts as an
// unapproved absence in payroll.
type Status string

const (
	StatusPresent Status = "present"
	StatusLate    Status = "late"
	StatusOnLeave Status = "on_leave"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusLate, StatusOnLeave:
		return true
	}
	return false
}

// RequestStatus is the approval state shared by all exception requests.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestStatusPending, RequestStatusApproved, RequestStatusRejected:
		return true
	}
	return false
}

// Record is one employee's attendance ledger entry for one calendar day,
// unique on (EmployeeID, Date).
type Record struct {
	ID               int64
	EmployeeID       int64
	Date             time.Time
	CheckIn          *TimeOfDay
	CheckOut         *TimeOfDay
	Status           *Status
	OvertimeApproved bool
	OvertimeHours    decimal.Decimal

	// Joined fields
	EmployeeName *string
}

// OvertimeRequest attaches 0..1 per attendance record.
type OvertimeRequest struct {
	ID                 int64
	AttendanceRecordID int64
	Status             RequestStatus

	// Joined fields
	EmployeeID   int64
	EmployeeName *string
	Date         time.Time
}

// ForgottenCheckoutRequest attaches 0..1 per attendance record.
type ForgottenCheckoutRequest struct {
	ID                 int64
	AttendanceRecordID int64
	Reason             *string
	Status             RequestStatus

	// Joined fields
	EmployeeID   int64
	EmployeeName *string
	Date         time.Time
}

// LeaveRequest attaches 0..1 per attendance record.
type LeaveRequest struct {
	ID                 int64
	AttendanceRecordID int64
	Reason             *string
	Status             RequestStatus

	// Joined fields
	EmployeeID   int64
	EmployeeName *string
	Date         time.Time
}
