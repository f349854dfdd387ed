package payroll

import "errors"

// Payroll domain errors
var (
	ErrAlreadyProcessed     = errors.New("payroll for this period has already been computed")
	ErrNoAttendanceForMonth = errors.New("no attendance records exist for this period")
	ErrNoEmployees          = errors.New("no employees exist in the system")
	ErrPolicyNotConfigured  = errors.New("policy parameters have not been configured")
	ErrInvalidPeriod        = errors.New("invalid payroll period")
)
