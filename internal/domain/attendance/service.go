package attendance

import (
	"context"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/auth"
)

// Service is the attendance state machine. Admin operations take no identity
// (role gating happens in middleware); employee operations act on behalf of
// the verified identity, never a caller-supplied employee id.
type Service interface {
	// Seed bulk-creates one empty record per employee for the date.
	Seed(ctx context.Context, date time.Time) (int, error)

	// ListForDate returns every record for a date (admin view).
	ListForDate(ctx context.Context, date time.Time) ([]RecordResponse, error)

	// DeleteForDate removes every record for a date.
	DeleteForDate(ctx context.Context, date time.Time) error

	// UpdateRecord lets an admin correct status / overtime flag directly.
	UpdateRecord(ctx context.Context, recordID int64, req UpdateRecordRequest) error

	// GetOwn returns the identity's record for a date.
	GetOwn(ctx context.Context, identity auth.Identity, date time.Time) (RecordResponse, error)

	CheckIn(ctx context.Context, identity auth.Identity, date time.Time) error
	CheckOut(ctx context.Context, identity auth.Identity, date time.Time) error

	RequestOvertime(ctx context.Context, identity auth.Identity, date time.Time) error
	ListOvertimeRequests(ctx context.Context, status RequestStatus) ([]OvertimeRequestResponse, error)
	ListOwnOvertimeRequests(ctx context.Context, identity auth.Identity, status RequestStatus) ([]OvertimeRequestResponse, error)
	ApproveOvertime(ctx context.Context, employeeID int64, date time.Time) error
	RejectOvertime(ctx context.Context, employeeID int64, date time.Time) error
	WithdrawOvertimeRequest(ctx context.Context, identity auth.Identity, date time.Time) error

	ReportForgottenCheckout(ctx context.Context, identity auth.Identity, date time.Time, reason *string) error
	ListForgottenCheckoutRequests(ctx context.Context, status RequestStatus) ([]ForgottenCheckoutRequestResponse, error)
	ListOwnForgottenCheckoutRequests(ctx context.Context, identity auth.Identity, status RequestStatus) ([]ForgottenCheckoutRequestResponse, error)
	ApproveForgottenCheckout(ctx context.Context, employeeID int64, date time.Time) error
	RejectForgottenCheckout(ctx context.Context, employeeID int64, date time.Time) error
	WithdrawForgottenCheckoutRequest(ctx context.Context, identity auth.Identity, date time.Time) error

	RequestLeave(ctx context.Context, identity auth.Identity, date time.Time, reason *string) error
	ListLeaveRequests(ctx context.Context, status RequestStatus) ([]LeaveRequestResponse, error)
	ListOwnLeaveRequests(ctx context.Context, identity auth.Identity, status RequestStatus) ([]LeaveRequestResponse, error)
	ApproveLeave(ctx context.Context, employeeID int64, date time.Time) error
	RejectLeave(ctx context.Context, employeeID int64, date time.Time) error
	WithdrawLeaveRequest(ctx context.Context, identity auth.Identity, date time.Time) error
}
