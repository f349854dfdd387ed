package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / check-out errors
	ErrNotToday            = errors.New("attendance can only be recorded for today")
	ErrCheckInWindowClosed = errors.New("check-in is only allowed between 08:00 and 09:00")
	ErrAlreadyCheckedIn    = errors.New("you have already checked in for this day")
	ErrCheckOutTooEarly    = errors.New("check-out is not allowed before 17:00")
	ErrNotCheckedIn        = errors.New("you have not checked in yet")
	ErrAlreadyCheckedOut   = errors.New("you have already checked out for this day")

	// Request window errors
	ErrOvertimeDateNotFuture    = errors.New("overtime can only be requested for a future date")
	ErrForgottenCheckoutNotPast = errors.New("a forgotten check-out can only be reported for a past date")
	ErrLeaveDateTooSoon         = errors.New("leave must be requested at least two days in advance")

	// Duplicate workflow requests
	ErrOvertimeRequestExists          = errors.New("an overtime request already exists for this day")
	ErrForgottenCheckoutRequestExists = errors.New("a forgotten check-out report already exists for this day")
	ErrLeaveRequestExists             = errors.New("a leave request already exists for this day")

	// General errors
	ErrRecordNotFound                   = errors.New("attendance record not found")
	ErrNoRecordsForDate                 = errors.New("no attendance records exist for this date")
	ErrOvertimeRequestNotFound          = errors.New("overtime request not found")
	ErrForgottenCheckoutRequestNotFound = errors.New("forgotten check-out report not found")
	ErrLeaveRequestNotFound             = errors.New("leave request not found")
	ErrNoEmployeesToSeed                = errors.New("no employees exist to seed attendance for")
	ErrInvalidStatus                    = errors.New("invalid attendance status")
	ErrInvalidRequestStatus             = errors.New("invalid request status")
)
