package attendance

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/auth"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
	"github.com/staffdesk/staffdesk-backend-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	db            postgresql.TxBeginner
	recordRepo    attendance.Repository
	overtimeRepo  attendance.OvertimeRequestRepository
	forgottenRepo attendance.ForgottenCheckoutRequestRepository
	leaveRepo     attendance.LeaveRequestRepository
	employeeRepo  employee.Repository

	// injectable clock for the time-window rules
	now func() time.Time
}

func NewAttendanceService(
	db *database.DB,
	recordRepo attendance.Repository,
	overtimeRepo attendance.OvertimeRequestRepository,
	forgottenRepo attendance.ForgottenCheckoutRequestRepository,
	leaveRepo attendance.LeaveRequestRepository,
	employeeRepo employee.Repository,
) attendance.Service {
	return &AttendanceServiceImpl{
		db:            db,
		recordRepo:    recordRepo,
		overtimeRepo:  overtimeRepo,
		forgottenRepo: forgottenRepo,
		leaveRepo:     leaveRepo,
		employeeRepo:  employeeRepo,
		now:           time.Now,
	}
}

// Seed implements attendance.Service.
func (s *AttendanceServiceImpl) Seed(ctx context.Context, date time.Time) (int, error) {
	employees, err := s.employeeRepo.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	if len(employees) == 0 {
		return 0, attendance.ErrNoEmployeesToSeed
	}

	records := make([]attendance.Record, 0, len(employees))
	for _, e := range employees {
		records = append(records, attendance.Record{
			EmployeeID: e.ID,
			Date:       dateOnly(date),
		})
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		return s.recordRepo.BulkCreate(txCtx, records)
	})
	if err != nil {
		return 0, err
	}

	return len(records), nil
}

// ListForDate implements attendance.Service.
func (s *AttendanceServiceImpl) ListForDate(ctx context.Context, date time.Time) ([]attendance.RecordResponse, error) {
	records, err := s.recordRepo.ListByDate(ctx, dateOnly(date))
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.NewRecordResponse(rec))
	}
	return responses, nil
}

// DeleteForDate implements attendance.Service.
func (s *AttendanceServiceImpl) DeleteForDate(ctx context.Context, date time.Time) error {
	count, err := s.recordRepo.DeleteByDate(ctx, dateOnly(date))
	if err != nil {
		return err
	}
	if count == 0 {
		return attendance.ErrNoRecordsForDate
	}
	return nil
}

// UpdateRecord implements attendance.Service.
func (s *AttendanceServiceImpl) UpdateRecord(ctx context.Context, recordID int64, req attendance.UpdateRecordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	rec, err := s.recordRepo.GetByID(ctx, recordID)
	if err != nil {
		return err
	}

	if req.Status != nil {
		status := attendance.Status(*req.Status)
		rec.Status = &status
	}
	if req.OvertimeApproved != nil {
		rec.OvertimeApproved = *req.OvertimeApproved
	}

	return s.recordRepo.Update(ctx, rec)
}

// GetOwn implements attendance.Service.
func (s *AttendanceServiceImpl) GetOwn(ctx context.Context, identity auth.Identity, date time.Time) (attendance.RecordResponse, error) {
	rec, err := s.recordRepo.GetByEmployeeAndDate(ctx, identity.SubjectID, dateOnly(date))
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	return attendance.NewRecordResponse(rec), nil
}

// CheckIn implements attendance.Service. Only the arrival time is recorded;
// the day is classified at check-out or by an approved exception.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, identity auth.Identity, date time.Time) error {
	now := s.now()
	if !sameDay(date, now) {
		return attendance.ErrNotToday
	}

	rec, err := s.recordRepo.GetByEmployeeAndDate(ctx, identity.SubjectID, dateOnly(date))
	if err != nil {
		return err
	}
	if rec.CheckIn != nil {
		return attendance.ErrAlreadyCheckedIn
	}

	at := attendance.TimeOfDayFromClock(now)
	if !checkInWindowOpen(at) {
		return attendance.ErrCheckInWindowClosed
	}

	// The guarded write decides the race between two concurrent check-ins.
	return s.recordRepo.SetCheckIn(ctx, rec.ID, at)
}

// CheckOut implements attendance.Service. The day settles here: arrival after
// 08:30 classifies it late, and overtime hours accrue only when the day's
// overtime was approved before the employee leaves.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, identity auth.Identity, date time.Time) error {
	now := s.now()
	if !sameDay(date, now) {
		return attendance.ErrNotToday
	}

	rec, err := s.recordRepo.GetByEmployeeAndDate(ctx, identity.SubjectID, dateOnly(date))
	if err != nil {
		return err
	}
	if rec.CheckIn == nil {
		return attendance.ErrNotCheckedIn
	}
	if rec.CheckOut != nil {
		return attendance.ErrAlreadyCheckedOut
	}

	at := attendance.TimeOfDayFromClock(now)
	if !canCheckOut(at) {
		return attendance.ErrCheckOutTooEarly
	}

	status := classifyCheckIn(*rec.CheckIn)
	hours := decimal.Zero
	if rec.OvertimeApproved {
		hours = overtimeHoursAt(at)
	}

	return s.recordRepo.SetCheckOut(ctx, rec.ID, at, status, hours)
}

// ========== OVERTIME ==========

// RequestOvertime implements attendance.Service. Overtime can only be asked
// for in advance, for a day whose record is already seeded.
func (s *AttendanceServiceImpl) RequestOvertime(ctx context.Context, identity auth.Identity, date time.Time) error {
	if !dateOnly(date).After(dateOnly(s.now())) {
		return attendance.ErrOvertimeDateNotFuture
	}

	rec, err := s.recordRepo.GetByEmployeeAndDate(ctx, identity.SubjectID, dateOnly(date))
	if err != nil {
		return err
	}

	if _, err := s.overtimeRepo.GetByRecordID(ctx, rec.ID); err == nil {
		return attendance.ErrOvertimeRequestExists
	} else if !errors.Is(err, attendance.ErrOvertimeRequestNotFound) {
		return err
	}

	return s.overtimeRepo.Create(ctx, rec.ID)
}

// ListOvertimeRequests implements attendance.Service.
func (s *AttendanceServiceImpl) ListOvertimeRequests(ctx context.Context, status attendance.RequestStatus) ([]attendance.OvertimeRequestResponse, error) {
	if !status.Valid() {
		return nil, attendance.ErrInvalidRequestStatus
	}

	requests, err := s.overtimeRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return toOvertimeResponses(requests), nil
}

// ListOwnOvertimeRequests implements attendance.Service.
func (s *AttendanceServiceImpl) ListOwnOvertimeRequests(ctx context.Context, identity auth.Identity, status attendance.RequestStatus) ([]attendance.OvertimeRequestResponse, error) {
	if !status.Valid() {
		return nil, attendance.ErrInvalidRequestStatus
	}

	requests, err := s.overtimeRepo.ListByEmployeeAndStatus(ctx, identity.SubjectID, status)
	if err != nil {
		return nil, err
	}
	return toOvertimeResponses(requests), nil
}

func toOvertimeResponses(requests []attendance.OvertimeRequest) []attendance.OvertimeRequestResponse {
	responses := make([]attendance.OvertimeRequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, attendance.NewOvertimeRequestResponse(req))
	}
	return responses
}

// ApproveOvertime implements attendance.Service. The request flips to
// approved and the day's record is armed so check-out accrues overtime.
func (s *AttendanceServiceImpl) ApproveOvertime(ctx context.Context, employeeID int64, date time.Time) error {
	req, err := s.overtimeRepo.GetByEmployeeAndDate(ctx, employeeID, dateOnly(date))
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.overtimeRepo.UpdateStatus(txCtx, req.ID, attendance.RequestStatusApproved); err != nil {
			return err
		}

		rec, err := s.recordRepo.GetByID(txCtx, req.AttendanceRecordID)
		if err != nil {
			return err
		}
		rec.OvertimeApproved = true
		return s.recordRepo.Update(txCtx, rec)
	})
}

// RejectOvertime implements attendance.Service. The record is disarmed in the
// same transaction in case the request was previously approved.
func (s *AttendanceServiceImpl) RejectOvertime(ctx context.Context, employeeID int64, date time.Time) error {
	req, err := s.overtimeRepo.GetByEmployeeAndDate(ctx, employeeID, dateOnly(date))
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.overtimeRepo.UpdateStatus(txCtx, req.ID, attendance.RequestStatusRejected); err != nil {
			return err
		}

		rec, err := s.recordRepo.GetByID(txCtx, req.AttendanceRecordID)
		if err != nil {
			return err
		}
		rec.OvertimeApproved = false
		return s.recordRepo.Update(txCtx, rec)
	})
}

// WithdrawOvertimeRequest implements attendance.Service. Withdrawal deletes
// the request outright, whatever state it is in.
func (s *AttendanceServiceImpl) WithdrawOvertimeRequest(ctx context.Context, identity auth.Identity, date time.Time) error {
	req, err := s.overtimeRepo.GetByEmployeeAndDate(ctx, identity.SubjectID, dateOnly(date))
	if err != nil {
		return err
	}
	return s.overtimeRepo.Delete(ctx, req.ID)
}

// ========== FORGOTTEN CHECK-OUT ==========

// ReportForgottenCheckout implements attendance.Service. Only a past day with
// a check-in but no check-out qualifies.
func (s *AttendanceServiceImpl) ReportForgottenCheckout(ctx context.Context, identity auth.Identity, date time.Time, reason *string) error {
	if !dateOnly(date).Before(dateOnly(s.now())) {
		return attendance.ErrForgottenCheckoutNotPast
	}

	rec, err := s.recordRepo.GetByEmployeeAndDate(ctx, identity.SubjectID, dateOnly(date))
	if err != nil {
		return err
	}
	if rec.CheckIn == nil {
		return attendance.ErrNotCheckedIn
	}
	if rec.CheckOut != nil {
		return attendance.ErrAlreadyCheckedOut
	}

	if _, err := s.forgottenRepo.GetByRecordID(ctx, rec.ID); err == nil {
		return attendance.ErrForgottenCheckoutRequestExists
	} else if !errors.Is(err, attendance.ErrForgottenCheckoutRequestNotFound) {
		return err
	}

	return s.forgottenRepo.Create(ctx, rec.ID, reason)
}

// ListForgottenCheckoutRequests implements attendance.Service.
func (s *AttendanceServiceImpl) ListForgottenCheckoutRequests(ctx context.Context, status attendance.RequestStatus) ([]attendance.ForgottenCheckoutRequestResponse, error) {
	if !status.Valid() {
		return nil, attendance.ErrInvalidRequestStatus
	}

	requests, err := s.forgottenRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return toForgottenCheckoutResponses(requests), nil
}

// ListOwnForgottenCheckoutRequests implements attendance.Service.
func (s *AttendanceServiceImpl) ListOwnForgottenCheckoutRequests(ctx context.Context, identity auth.Identity, status attendance.RequestStatus) ([]attendance.ForgottenCheckoutRequestResponse, error) {
	if !status.Valid() {
		return nil, attendance.ErrInvalidRequestStatus
	}

	requests, err := s.forgottenRepo.ListByEmployeeAndStatus(ctx, identity.SubjectID, status)
	if err != nil {
		return nil, err
	}
	return toForgottenCheckoutResponses(requests), nil
}

func toForgottenCheckoutResponses(requests []attendance.ForgottenCheckoutRequest) []attendance.ForgottenCheckoutRequestResponse {
	responses := make([]attendance.ForgottenCheckoutRequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, attendance.NewForgottenCheckoutRequestResponse(req))
	}
	return responses
}

// ApproveForgottenCheckout implements attendance.Service. Approval settles
// the day's status from the recorded check-in; the missing check-out stays
// empty, so the day accrues no overtime.
func (s *AttendanceServiceImpl) ApproveForgottenCheckout(ctx context.Context, employeeID int64, date time.Time) error {
	req, err := s.forgottenRepo.GetByEmployeeAndDate(ctx, employeeID, dateOnly(date))
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.forgottenRepo.UpdateStatus(txCtx, req.ID, attendance.RequestStatusApproved); err != nil {
			return err
		}

		rec, err := s.recordRepo.GetByID(txCtx, req.AttendanceRecordID)
		if err != nil {
			return err
		}
		if rec.CheckIn != nil {
			status := classifyCheckIn(*rec.CheckIn)
			rec.Status = &status
		}
		return s.recordRepo.Update(txCtx, rec)
	})
}

// RejectForgottenCheckout implements attendance.Service. The day's status is
// cleared, leaving it to count as an unapproved absence.
func (s *AttendanceServiceImpl) RejectForgottenCheckout(ctx context.Context, employeeID int64, date time.Time) error {
	req, err := s.forgottenRepo.GetByEmployeeAndDate(ctx, employeeID, dateOnly(date))
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.forgottenRepo.UpdateStatus(txCtx, req.ID, attendance.RequestStatusRejected); err != nil {
			return err
		}

		rec, err := s.recordRepo.GetByID(txCtx, req.AttendanceRecordID)
		if err != nil {
			return err
		}
		rec.Status = nil
		return s.recordRepo.Update(txCtx, rec)
	})
}

// WithdrawForgottenCheckoutRequest implements attendance.Service.
func (s *AttendanceServiceImpl) WithdrawForgottenCheckoutRequest(ctx context.Context, identity auth.Identity, date time.Time) error {
	req, err := s.forgottenRepo.GetByEmployeeAndDate(ctx, identity.SubjectID, dateOnly(date))
	if err != nil {
		return err
	}
	return s.forgottenRepo.Delete(ctx, req.ID)
}

// ========== LEAVE ==========

// RequestLeave implements attendance.Service. Leave needs at least two full
// days of notice.
func (s *AttendanceServiceImpl) RequestLeave(ctx context.Context, identity auth.Identity, date time.Time, reason *string) error {
	earliest := dateOnly(s.now()).AddDate(0, 0, 2)
	if dateOnly(date).Before(earliest) {
		return attendance.ErrLeaveDateTooSoon
	}

	rec, err := s.recordRepo.GetByEmployeeAndDate(ctx, identity.SubjectID, dateOnly(date))
	if err != nil {
		return err
	}

	if _, err := s.leaveRepo.GetByRecordID(ctx, rec.ID); err == nil {
		return attendance.ErrLeaveRequestExists
	} else if !errors.Is(err, attendance.ErrLeaveRequestNotFound) {
		return err
	}

	return s.leaveRepo.Create(ctx, rec.ID, reason)
}

// ListLeaveRequests implements attendance.Service.
func (s *AttendanceServiceImpl) ListLeaveRequests(ctx context.Context, status attendance.RequestStatus) ([]attendance.LeaveRequestResponse, error) {
	if !status.Valid() {
		return nil, attendance.ErrInvalidRequestStatus
	}

	requests, err := s.leaveRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, err
	}
	return toLeaveResponses(requests), nil
}

// ListOwnLeaveRequests implements attendance.Service.
func (s *AttendanceServiceImpl) ListOwnLeaveRequests(ctx context.Context, identity auth.Identity, status attendance.RequestStatus) ([]attendance.LeaveRequestResponse, error) {
	if !status.Valid() {
		return nil, attendance.ErrInvalidRequestStatus
	}

	requests, err := s.leaveRepo.ListByEmployeeAndStatus(ctx, identity.SubjectID, status)
	if err != nil {
		return nil, err
	}
	return toLeaveResponses(requests), nil
}

func toLeaveResponses(requests []attendance.LeaveRequest) []attendance.LeaveRequestResponse {
	responses := make([]attendance.LeaveRequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, attendance.NewLeaveRequestResponse(req))
	}
	return responses
}

// ApproveLeave implements attendance.Service. The day is settled as on_leave
// in the same transaction that flips the request.
func (s *AttendanceServiceImpl) ApproveLeave(ctx context.Context, employeeID int64, date time.Time) error {
	req, err := s.leaveRepo.GetByEmployeeAndDate(ctx, employeeID, dateOnly(date))
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.leaveRepo.UpdateStatus(txCtx, req.ID, attendance.RequestStatusApproved); err != nil {
			return err
		}

		rec, err := s.recordRepo.GetByID(txCtx, req.AttendanceRecordID)
		if err != nil {
			return err
		}
		status := attendance.StatusOnLeave
		rec.Status = &status
		return s.recordRepo.Update(txCtx, rec)
	})
}

// RejectLeave implements attendance.Service. The day's status is cleared so it
// no longer counts as leave.
func (s *AttendanceServiceImpl) RejectLeave(ctx context.Context, employeeID int64, date time.Time) error {
	req, err := s.leaveRepo.GetByEmployeeAndDate(ctx, employeeID, dateOnly(date))
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if err := s.leaveRepo.UpdateStatus(txCtx, req.ID, attendance.RequestStatusRejected); err != nil {
			return err
		}

		rec, err := s.recordRepo.GetByID(txCtx, req.AttendanceRecordID)
		if err != nil {
			return err
		}
		rec.Status = nil
		return s.recordRepo.Update(txCtx, rec)
	})
}

// WithdrawLeaveRequest implements attendance.Service.
func (s *AttendanceServiceImpl) WithdrawLeaveRequest(ctx context.Context, identity auth.Identity, date time.Time) error {
	req, err := s.leaveRepo.GetByEmployeeAndDate(ctx, identity.SubjectID, dateOnly(date))
	if err != nil {
		return err
	}
	return s.leaveRepo.Delete(ctx, req.ID)
}
