package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/auth"
	"github.com/staffdesk/staffdesk-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	// Admin surface
	Seed(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	UpdateRecord(w http.ResponseWriter, r *http.Request)
	ListOvertimeRequests(w http.ResponseWriter, r *http.Request)
	ApproveOvertime(w http.ResponseWriter, r *http.Request)
	RejectOvertime(w http.ResponseWriter, r *http.Request)
	ListForgottenCheckoutRequests(w http.ResponseWriter, r *http.Request)
	ApproveForgottenCheckout(w http.ResponseWriter, r *http.Request)
	RejectForgottenCheckout(w http.ResponseWriter, r *http.Request)
	ListLeaveRequests(w http.ResponseWriter, r *http.Request)
	ApproveLeave(w http.ResponseWriter, r *http.Request)
	RejectLeave(w http.ResponseWriter, r *http.Request)

	// Employee surface
	GetOwn(w http.ResponseWriter, r *http.Request)
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	RequestOvertime(w http.ResponseWriter, r *http.Request)
	ListOwnOvertimeRequests(w http.ResponseWriter, r *http.Request)
	WithdrawOvertimeRequest(w http.ResponseWriter, r *http.Request)
	ReportForgottenCheckout(w http.ResponseWriter, r *http.Request)
	ListOwnForgottenCheckoutRequests(w http.ResponseWriter, r *http.Request)
	WithdrawForgottenCheckoutRequest(w http.ResponseWriter, r *http.Request)
	RequestLeave(w http.ResponseWriter, r *http.Request)
	ListOwnLeaveRequests(w http.ResponseWriter, r *http.Request)
	WithdrawLeaveRequest(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

type dateBody struct {
	Date string `json:"date"`
}

type reasonedDateBody struct {
	Date   string  `json:"date"`
	Reason *string `json:"reason"`
}

type decisionBody struct {
	EmployeeID int64  `json:"employee_id"`
	Date       string `json:"date"`
}

func (b decisionBody) parse() (int64, time.Time, bool) {
	if b.EmployeeID <= 0 {
		return 0, time.Time{}, false
	}
	date, err := time.Parse("2006-01-02", b.Date)
	if err != nil {
		return 0, time.Time{}, false
	}
	return b.EmployeeID, date, true
}

// statusQuery reads the status filter, defaulting to pending.
func statusQuery(r *http.Request) attendance.RequestStatus {
	raw := r.URL.Query().Get("status")
	if raw == "" {
		return attendance.RequestStatusPending
	}
	return attendance.RequestStatus(raw)
}

// ========== ADMIN: RECORDS ==========

// Seed implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Seed(w http.ResponseWriter, r *http.Request) {
	date, ok := parseDateQuery(r, "date")
	if !ok {
		response.BadRequest(w, "date query parameter is required (YYYY-MM-DD)", nil)
		return
	}

	created, err := h.attendanceService.Seed(r.Context(), date)
	if err != nil {
		slog.Error("Attendance seed failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance records created", map[string]int{"created": created})
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	date, ok := parseDateQuery(r, "date")
	if !ok {
		response.BadRequest(w, "date query parameter is required (YYYY-MM-DD)", nil)
		return
	}

	resp, err := h.attendanceService.ListForDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Delete implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	date, ok := parseDateQuery(r, "date")
	if !ok {
		response.BadRequest(w, "date query parameter is required (YYYY-MM-DD)", nil)
		return
	}

	if err := h.attendanceService.DeleteForDate(r.Context(), date); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance records deleted", nil)
}

// UpdateRecord implements AttendanceHandler.
func (h *AttendanceHandlerImpl) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	recordID, ok := parseIDParam(r, "recordID")
	if !ok {
		response.BadRequest(w, "Invalid record id", nil)
		return
	}

	var req attendance.UpdateRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.attendanceService.UpdateRecord(r.Context(), recordID, req); err != nil {
		slog.Error("Attendance update failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance record updated", nil)
}

// ========== ADMIN: REQUEST DECISIONS ==========

// ListOvertimeRequests implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListOvertimeRequests(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.ListOvertimeRequests(r.Context(), statusQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// ApproveOvertime implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ApproveOvertime(w http.ResponseWriter, r *http.Request) {
	var body decisionBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	employeeID, date, ok := body.parse()
	if !ok {
		response.BadRequest(w, "employee_id and date (YYYY-MM-DD) are required", nil)
		return
	}

	if err := h.attendanceService.ApproveOvertime(r.Context(), employeeID, date); err != nil {
		slog.Error("Overtime approval failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime request approved", nil)
}

// RejectOvertime implements AttendanceHandler.
func (h *AttendanceHandlerImpl) RejectOvertime(w http.ResponseWriter, r *http.Request) {
	var body decisionBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	employeeID, date, ok := body.parse()
	if !ok {
		response.BadRequest(w, "employee_id and date (YYYY-MM-DD) are required", nil)
		return
	}

	if err := h.attendanceService.RejectOvertime(r.Context(), employeeID, date); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime request rejected", nil)
}

// ListForgottenCheckoutRequests implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListForgottenCheckoutRequests(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.ListForgottenCheckoutRequests(r.Context(), statusQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// ApproveForgottenCheckout implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ApproveForgottenCheckout(w http.ResponseWriter, r *http.Request) {
	var body decisionBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	employeeID, date, ok := body.parse()
	if !ok {
		response.BadRequest(w, "employee_id and date (YYYY-MM-DD) are required", nil)
		return
	}

	if err := h.attendanceService.ApproveForgottenCheckout(r.Context(), employeeID, date); err != nil {
		slog.Error("Forgotten check-out approval failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Forgotten check-out report approved", nil)
}

// RejectForgottenCheckout implements AttendanceHandler.
func (h *AttendanceHandlerImpl) RejectForgottenCheckout(w http.ResponseWriter, r *http.Request) {
	var body decisionBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	employeeID, date, ok := body.parse()
	if !ok {
		response.BadRequest(w, "employee_id and date (YYYY-MM-DD) are required", nil)
		return
	}

	if err := h.attendanceService.RejectForgottenCheckout(r.Context(), employeeID, date); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Forgotten check-out report rejected", nil)
}

// ListLeaveRequests implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListLeaveRequests(w http.ResponseWriter, r *http.Request) {
	resp, err := h.attendanceService.ListLeaveRequests(r.Context(), statusQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// ApproveLeave implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ApproveLeave(w http.ResponseWriter, r *http.Request) {
	var body decisionBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	employeeID, date, ok := body.parse()
	if !ok {
		response.BadRequest(w, "employee_id and date (YYYY-MM-DD) are required", nil)
		return
	}

	if err := h.attendanceService.ApproveLeave(r.Context(), employeeID, date); err != nil {
		slog.Error("Leave approval failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved", nil)
}

// RejectLeave implements AttendanceHandler.
func (h *AttendanceHandlerImpl) RejectLeave(w http.ResponseWriter, r *http.Request) {
	var body decisionBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	employeeID, date, ok := body.parse()
	if !ok {
		response.BadRequest(w, "employee_id and date (YYYY-MM-DD) are required", nil)
		return
	}

	if err := h.attendanceService.RejectLeave(r.Context(), employeeID, date); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", nil)
}

// ========== EMPLOYEE: OWN ATTENDANCE ==========

func identityFrom(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	identity, err := auth.IdentityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return auth.Identity{}, false
	}
	return identity, true
}

// GetOwn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetOwn(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(w, r)
	if !ok {
		return
	}

	date, ok := parseDateQueryDefault(r, "date")
	if !ok {
		response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
		return
	}

	resp, err := h.attendanceService.GetOwn(r.Context(), identity, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(w, r)
	if !ok {
		return
	}

	if err := h.attendanceService.CheckIn(r.Context(), identity, time.Now()); err != nil {
		slog.Error("Check-in failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked in", nil)
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(w, r)
	if !ok {
		return
	}

	if err := h.attendanceService.CheckOut(r.Context(), identity, time.Now()); err != nil {
		slog.Error("Check-out failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out", nil)
}

// ========== EMPLOYEE: EXCEPTION REQUESTS ==========

// RequestOvertime implements AttendanceHandler.
func (h *AttendanceHandlerImpl) RequestOvertime(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(w, r)
	if !ok {
		return
	}

	var body dateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
		return
	}

	if err := h.attendanceService.RequestOvertime(r.Context(), identity, date); err != nil {
		slog.Error("Overtime request failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime request submitted", nil)
}

// ListOwnOvertimeRequests implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListOwnOvertimeRequests(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(w, r)
	if !ok {
		return
	}

	resp, err := h.attendanceService.ListOwnOvertimeRequests(r.Context(), identity, statusQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// WithdrawOvertimeRequest implements AttendanceHandler.
func (h *AttendanceHandlerImpl) WithdrawOvertimeRequest(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(w, r)
	if !ok {
		return
	}

	date, ok := parseDateQuery(r, "date")
	if !ok {
		response.BadRequest(w, "date query parameter is required (YYYY-MM-DD)", nil)
		return
	}

	if err := h.attendanceService.WithdrawOvertimeRequest(r.Context(), identity, date); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overtime request withdrawn", nil)
}

// ReportForgottenCheckout implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ReportForgottenCheckout(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(w, r)
	if !ok {
		return
	}

	var body reasonedDateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
		return
	}

	if err := h.attendanceService.ReportForgottenCheckout(r.Context(), identity, date, body.Reason); err != nil {
		slog.Error("Forgotten check-out report failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Forgotten check-out report submitted", nil)
}

// ListOwnForgottenCheckoutRequests implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListOwnForgottenCheckoutRequests(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(w, r)
	if !ok {
		return
	}

	resp, err := h.attendanceService.ListOwnForgottenCheckoutRequests(r.Context(), identity, statusQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// WithdrawForgottenCheckoutRequest implements AttendanceHandler.
func (h *AttendanceHandlerImpl) WithdrawForgottenCheckoutRequest(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(w, r)
	if !ok {
		return
	}

	date, ok := parseDateQuery(r, "date")
	if !ok {
		response.BadRequest(w, "date query parameter is required (YYYY-MM-DD)", nil)
		return
	}

	if err := h.attendanceService.WithdrawForgottenCheckoutRequest(r.Context(), identity, date); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Forgotten check-out report withdrawn", nil)
}

// RequestLeave implements AttendanceHandler.
func (h *AttendanceHandlerImpl) RequestLeave(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(w, r)
	if !ok {
		return
	}

	var body reasonedDateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
		return
	}

	if err := h.attendanceService.RequestLeave(r.Context(), identity, date, body.Reason); err != nil {
		slog.Error("Leave request failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Leave request submitted", nil)
}

// ListOwnLeaveRequests implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListOwnLeaveRequests(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(w, r)
	if !ok {
		return
	}

	resp, err := h.attendanceService.ListOwnLeaveRequests(r.Context(), identity, statusQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// WithdrawLeaveRequest implements AttendanceHandler.
func (h *AttendanceHandlerImpl) WithdrawLeaveRequest(w http.ResponseWriter, r *http.Request) {
	identity, ok := identityFrom(w, r)
	if !ok {
		return
	}

	date, ok := parseDateQuery(r, "date")
	if !ok {
		response.BadRequest(w, "date query parameter is required (YYYY-MM-DD)", nil)
		return
	}

	if err := h.attendanceService.WithdrawLeaveRequest(r.Context(), identity, date); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request withdrawn", nil)
}
