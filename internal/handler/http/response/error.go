package response

import (
	"errors"
	"net/http"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/auth"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/payroll"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/policy"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")
	case errors.Is(err, auth.ErrEmployeeAccessRequired):
		Forbidden(w, "Employee access required")
	case errors.Is(err, auth.ErrAccountNotFound):
		NotFound(w, "Account not found")
	case errors.Is(err, auth.ErrWrongOldPassword):
		BadRequest(w, "Old password is incorrect", nil)
	case errors.Is(err, auth.ErrPasswordConfirmMismatch):
		BadRequest(w, "Password confirmation does not match", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrPhoneExists):
		Conflict(w, "Phone number already registered")
	case errors.Is(err, employee.ErrNoEmployeesFound):
		NotFound(w, "No employees match the filter")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrNotToday):
		BadRequest(w, "Attendance can only be recorded for today", nil)
	case errors.Is(err, attendance.ErrCheckInWindowClosed):
		BadRequest(w, "Check-in is only allowed between 08:00 and 09:00", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrCheckOutTooEarly):
		BadRequest(w, "Check-out is only allowed from 17:00", nil)
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, "No check-in recorded for this day", nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out")
	case errors.Is(err, attendance.ErrOvertimeDateNotFuture):
		BadRequest(w, "Overtime must be requested for a future date", nil)
	case errors.Is(err, attendance.ErrForgottenCheckoutNotPast):
		BadRequest(w, "Forgotten check-out can only be reported for a past date", nil)
	case errors.Is(err, attendance.ErrLeaveDateTooSoon):
		BadRequest(w, "Leave must be requested at least two days in advance", nil)
	case errors.Is(err, attendance.ErrOvertimeRequestExists):
		Conflict(w, "An overtime request already exists for this day")
	case errors.Is(err, attendance.ErrForgottenCheckoutRequestExists):
		Conflict(w, "A forgotten check-out report already exists for this day")
	case errors.Is(err, attendance.ErrLeaveRequestExists):
		Conflict(w, "A leave request already exists for this day")
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrNoRecordsForDate):
		NotFound(w, "No attendance records for this date")
	case errors.Is(err, attendance.ErrOvertimeRequestNotFound):
		NotFound(w, "Overtime request not found")
	case errors.Is(err, attendance.ErrForgottenCheckoutRequestNotFound):
		NotFound(w, "Forgotten check-out report not found")
	case errors.Is(err, attendance.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, attendance.ErrNoEmployeesToSeed):
		BadRequest(w, "There are no employees to create records for", nil)
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)
	case errors.Is(err, attendance.ErrInvalidRequestStatus):
		BadRequest(w, "Status must be one of pending, approved, rejected", nil)

	// Policy domain errors
	case errors.Is(err, policy.ErrParametersNotFound):
		NotFound(w, "Policy parameters have not been configured")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrAlreadyProcessed):
		Conflict(w, "Payroll for this period has already been computed")
	case errors.Is(err, payroll.ErrNoAttendanceForMonth):
		NotFound(w, "No attendance records for this period")
	case errors.Is(err, payroll.ErrNoEmployees):
		BadRequest(w, "There are no employees to process", nil)
	case errors.Is(err, payroll.ErrPolicyNotConfigured):
		BadRequest(w, "Policy parameters must be configured first", nil)
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
