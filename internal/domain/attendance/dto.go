package attendance

import (
	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type RecordResponse struct {
	ID               int64           `json:"id"`
	EmployeeID       int64           `json:"employee_id"`
	EmployeeName     *string         `json:"employee_name,omitempty"`
	Date             string          `json:"date"`
	CheckIn          *TimeOfDay      `json:"check_in"`
	CheckOut         *TimeOfDay      `json:"check_out"`
	Status           *Status         `json:"status"`
	OvertimeApproved bool            `json:"overtime_approved"`
	OvertimeHours    decimal.Decimal `json:"overtime_hours"`
}

func NewRecordResponse(rec Record) RecordResponse {
	return RecordResponse{
		ID:               rec.ID,
		EmployeeID:       rec.EmployeeID,
		EmployeeName:     rec.EmployeeName,
		Date:             rec.Date.Format("2006-01-02"),
		CheckIn:          rec.CheckIn,
		CheckOut:         rec.CheckOut,
		Status:           rec.Status,
		OvertimeApproved: rec.OvertimeApproved,
		OvertimeHours:    rec.OvertimeHours,
	}
}

// UpdateRecordRequest is the admin correction surface: it may override the
// status classification and the overtime approval flag directly.
type UpdateRecordRequest struct {
	Status           *string `json:"status"`
	OvertimeApproved *bool   `json:"overtime_approved"`
}

func (r *UpdateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && *r.Status != "" && !Status(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of present, late, on_leave",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ========================================
// EXCEPTION REQUEST DTOs
// ========================================

type OvertimeRequestResponse struct {
	Status       RequestStatus `json:"status"`
	Date         string        `json:"date"`
	EmployeeID   int64         `json:"employee_id,omitempty"`
	EmployeeName *string       `json:"employee_name,omitempty"`
}

func NewOvertimeRequestResponse(req OvertimeRequest) OvertimeRequestResponse {
	return OvertimeRequestResponse{
		Status:       req.Status,
		Date:         req.Date.Format("2006-01-02"),
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
	}
}

type ForgottenCheckoutRequestResponse struct {
	Status       RequestStatus `json:"status"`
	Reason       *string       `json:"reason"`
	Date         string        `json:"date"`
	EmployeeID   int64         `json:"employee_id,omitempty"`
	EmployeeName *string       `json:"employee_name,omitempty"`
}

func NewForgottenCheckoutRequestResponse(req ForgottenCheckoutRequest) ForgottenCheckoutRequestResponse {
	return ForgottenCheckoutRequestResponse{
		Status:       req.Status,
		Reason:       req.Reason,
		Date:         req.Date.Format("2006-01-02"),
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
	}
}

type LeaveRequestResponse struct {
	Status       RequestStatus `json:"status"`
	Reason       *string       `json:"reason"`
	Date         string        `json:"date"`
	EmployeeID   int64         `json:"employee_id,omitempty"`
	EmployeeName *string       `json:"employee_name,omitempty"`
}

func NewLeaveRequestResponse(req LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		Status:       req.Status,
		Reason:       req.Reason,
		Date:         req.Date.Format("2006-01-02"),
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
	}
}
