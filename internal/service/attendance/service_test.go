package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/attendance"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecordRepo struct {
	records map[int64]attendance.Record
	nextID  int64
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: make(map[int64]attendance.Record), nextID: 1}
}

func (f *fakeRecordRepo) seed(employeeID int64, date time.Time) attendance.Record {
	rec := attendance.Record{ID: f.nextID, EmployeeID: employeeID, Date: dateOnly(date)}
	f.records[rec.ID] = rec
	f.nextID++
	return rec
}

func (f *fakeRecordRepo) BulkCreate(ctx context.Context, records []attendance.Record) error {
	for _, rec := range records {
		rec.ID = f.nextID
		f.records[rec.ID] = rec
		f.nextID++
	}
	return nil
}

func (f *fakeRecordRepo) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (attendance.Record, error) {
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && rec.Date.Equal(date) {
			return rec, nil
		}
	}
	return attendance.Record{}, attendance.ErrRecordNotFound
}

func (f *fakeRecordRepo) GetByID(ctx context.Context, id int64) (attendance.Record, error) {
	rec, ok := f.records[id]
	if !ok {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	return rec, nil
}

func (f *fakeRecordRepo) ListByDate(ctx context.Context, date time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.Date.Equal(date) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeRecordRepo) DeleteByDate(ctx context.Context, date time.Time) (int64, error) {
	var count int64
	for id, rec := range f.records {
		if rec.Date.Equal(date) {
			delete(f.records, id)
			count++
		}
	}
	return count, nil
}

func (f *fakeRecordRepo) Update(ctx context.Context, rec attendance.Record) error {
	if _, ok := f.records[rec.ID]; !ok {
		return attendance.ErrRecordNotFound
	}
	f.records[rec.ID] = rec
	return nil
}

func (f *fakeRecordRepo) SetCheckIn(ctx context.Context, id int64, checkIn attendance.TimeOfDay) error {
	rec, ok := f.records[id]
	if !ok || rec.CheckIn != nil {
		return attendance.ErrAlreadyCheckedIn
	}
	rec.CheckIn = &checkIn
	f.records[id] = rec
	return nil
}

func (f *fakeRecordRepo) SetCheckOut(ctx context.Context, id int64, checkOut attendance.TimeOfDay, status attendance.Status, overtimeHours decimal.Decimal) error {
	rec, ok := f.records[id]
	if !ok || rec.CheckIn == nil || rec.CheckOut != nil {
		return attendance.ErrAlreadyCheckedOut
	}
	rec.CheckOut = &checkOut
	rec.Status = &status
	rec.OvertimeHours = overtimeHours
	f.records[id] = rec
	return nil
}

// staleReadRecordRepo serves reads from a snapshot taken at construction while
// writes hit the live store, modelling two requests that both read the record
// before either one writes.
type staleReadRecordRepo struct {
	*fakeRecordRepo
	snapshot map[int64]attendance.Record
}

func newStaleReadRepo(f *fakeRecordRepo) *staleReadRecordRepo {
	snap := make(map[int64]attendance.Record, len(f.records))
	for id, rec := range f.records {
		snap[id] = rec
	}
	return &staleReadRecordRepo{fakeRecordRepo: f, snapshot: snap}
}

func (s *staleReadRecordRepo) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (attendance.Record, error) {
	for _, rec := range s.snapshot {
		if rec.EmployeeID == employeeID && rec.Date.Equal(date) {
			return rec, nil
		}
	}
	return attendance.Record{}, attendance.ErrRecordNotFound
}

type fakeOvertimeRepo struct {
	requests map[int64]attendance.OvertimeRequest
	records  attendance.Repository
	nextID   int64
}

func newFakeOvertimeRepo(records attendance.Repository) *fakeOvertimeRepo {
	return &fakeOvertimeRepo{requests: make(map[int64]attendance.OvertimeRequest), records: records, nextID: 1}
}

func (f *fakeOvertimeRepo) Create(ctx context.Context, attendanceRecordID int64) error {
	for _, req := range f.requests {
		if req.AttendanceRecordID == attendanceRecordID {
			return attendance.ErrOvertimeRequestExists
		}
	}
	f.requests[f.nextID] = attendance.OvertimeRequest{
		ID:                 f.nextID,
		AttendanceRecordID: attendanceRecordID,
		Status:             attendance.RequestStatusPending,
	}
	f.nextID++
	return nil
}

func (f *fakeOvertimeRepo) GetByRecordID(ctx context.Context, attendanceRecordID int64) (attendance.OvertimeRequest, error) {
	for _, req := range f.requests {
		if req.AttendanceRecordID == attendanceRecordID {
			return req, nil
		}
	}
	return attendance.OvertimeRequest{}, attendance.ErrOvertimeRequestNotFound
}

func (f *fakeOvertimeRepo) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (attendance.OvertimeRequest, error) {
	for _, req := range f.requests {
		rec, err := f.records.GetByID(ctx, req.AttendanceRecordID)
		if err == nil && rec.EmployeeID == employeeID && rec.Date.Equal(date) {
			return req, nil
		}
	}
	return attendance.OvertimeRequest{}, attendance.ErrOvertimeRequestNotFound
}

func (f *fakeOvertimeRepo) UpdateStatus(ctx context.Context, id int64, status attendance.RequestStatus) error {
	req, ok := f.requests[id]
	if !ok {
		return attendance.ErrOvertimeRequestNotFound
	}
	req.Status = status
	f.requests[id] = req
	return nil
}

func (f *fakeOvertimeRepo) ListByStatus(ctx context.Context, status attendance.RequestStatus) ([]attendance.OvertimeRequest, error) {
	var out []attendance.OvertimeRequest
	for _, req := range f.requests {
		if req.Status == status {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeOvertimeRepo) ListByEmployeeAndStatus(ctx context.Context, employeeID int64, status attendance.RequestStatus) ([]attendance.OvertimeRequest, error) {
	var out []attendance.OvertimeRequest
	for _, req := range f.requests {
		rec, err := f.records.GetByID(ctx, req.AttendanceRecordID)
		if err == nil && rec.EmployeeID == employeeID && req.Status == status {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeOvertimeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.requests[id]; !ok {
		return attendance.ErrOvertimeRequestNotFound
	}
	delete(f.requests, id)
	return nil
}

type fakeForgottenRepo struct {
	requests map[int64]attendance.ForgottenCheckoutRequest
	records  attendance.Repository
	nextID   int64
}

func newFakeForgottenRepo(records attendance.Repository) *fakeForgottenRepo {
	return &fakeForgottenRepo{requests: make(map[int64]attendance.ForgottenCheckoutRequest), records: records, nextID: 1}
}

func (f *fakeForgottenRepo) Create(ctx context.Context, attendanceRecordID int64, reason *string) error {
	for _, req := range f.requests {
		if req.AttendanceRecordID == attendanceRecordID {
			return attendance.ErrForgottenCheckoutRequestExists
		}
	}
	f.requests[f.nextID] = attendance.ForgottenCheckoutRequest{
		ID:                 f.nextID,
		AttendanceRecordID: attendanceRecordID,
		Reason:             reason,
		Status:             attendance.RequestStatusPending,
	}
	f.nextID++
	return nil
}

func (f *fakeForgottenRepo) GetByRecordID(ctx context.Context, attendanceRecordID int64) (attendance.ForgottenCheckoutRequest, error) {
	for _, req := range f.requests {
		if req.AttendanceRecordID == attendanceRecordID {
			return req, nil
		}
	}
	return attendance.ForgottenCheckoutRequest{}, attendance.ErrForgottenCheckoutRequestNotFound
}

func (f *fakeForgottenRepo) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (attendance.ForgottenCheckoutRequest, error) {
	for _, req := range f.requests {
		rec, err := f.records.GetByID(ctx, req.AttendanceRecordID)
		if err == nil && rec.EmployeeID == employeeID && rec.Date.Equal(date) {
			return req, nil
		}
	}
	return attendance.ForgottenCheckoutRequest{}, attendance.ErrForgottenCheckoutRequestNotFound
}

func (f *fakeForgottenRepo) UpdateStatus(ctx context.Context, id int64, status attendance.RequestStatus) error {
	req, ok := f.requests[id]
	if !ok {
		return attendance.ErrForgottenCheckoutRequestNotFound
	}
	req.Status = status
	f.requests[id] = req
	return nil
}

func (f *fakeForgottenRepo) ListByStatus(ctx context.Context, status attendance.RequestStatus) ([]attendance.ForgottenCheckoutRequest, error) {
	var out []attendance.ForgottenCheckoutRequest
	for _, req := range f.requests {
		if req.Status == status {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeForgottenRepo) ListByEmployeeAndStatus(ctx context.Context, employeeID int64, status attendance.RequestStatus) ([]attendance.ForgottenCheckoutRequest, error) {
	var out []attendance.ForgottenCheckoutRequest
	for _, req := range f.requests {
		rec, err := f.records.GetByID(ctx, req.AttendanceRecordID)
		if err == nil && rec.EmployeeID == employeeID && req.Status == status {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeForgottenRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.requests[id]; !ok {
		return attendance.ErrForgottenCheckoutRequestNotFound
	}
	delete(f.requests, id)
	return nil
}

type fakeLeaveRepo struct {
	requests map[int64]attendance.LeaveRequest
	records  attendance.Repository
	nextID   int64
}

func newFakeLeaveRepo(records attendance.Repository) *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[int64]attendance.LeaveRequest), records: records, nextID: 1}
}

func (f *fakeLeaveRepo) Create(ctx context.Context, attendanceRecordID int64, reason *string) error {
	for _, req := range f.requests {
		if req.AttendanceRecordID == attendanceRecordID {
			return attendance.ErrLeaveRequestExists
		}
	}
	f.requests[f.nextID] = attendance.LeaveRequest{
		ID:                 f.nextID,
		AttendanceRecordID: attendanceRecordID,
		Reason:             reason,
		Status:             attendance.RequestStatusPending,
	}
	f.nextID++
	return nil
}

func (f *fakeLeaveRepo) GetByRecordID(ctx context.Context, attendanceRecordID int64) (attendance.LeaveRequest, error) {
	for _, req := range f.requests {
		if req.AttendanceRecordID == attendanceRecordID {
			return req, nil
		}
	}
	return attendance.LeaveRequest{}, attendance.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRepo) GetByEmployeeAndDate(ctx context.Context, employeeID int64, date time.Time) (attendance.LeaveRequest, error) {
	for _, req := range f.requests {
		rec, err := f.records.GetByID(ctx, req.AttendanceRecordID)
		if err == nil && rec.EmployeeID == employeeID && rec.Date.Equal(date) {
			return req, nil
		}
	}
	return attendance.LeaveRequest{}, attendance.ErrLeaveRequestNotFound
}

func (f *fakeLeaveRepo) UpdateStatus(ctx context.Context, id int64, status attendance.RequestStatus) error {
	req, ok := f.requests[id]
	if !ok {
		return attendance.ErrLeaveRequestNotFound
	}
	req.Status = status
	f.requests[id] = req
	return nil
}

func (f *fakeLeaveRepo) ListByStatus(ctx context.Context, status attendance.RequestStatus) ([]attendance.LeaveRequest, error) {
	var out []attendance.LeaveRequest
	for _, req := range f.requests {
		if req.Status == status {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListByEmployeeAndStatus(ctx context.Context, employeeID int64, status attendance.RequestStatus) ([]attendance.LeaveRequest, error) {
	var out []attendance.LeaveRequest
	for _, req := range f.requests {
		rec, err := f.records.GetByID(ctx, req.AttendanceRecordID)
		if err == nil && rec.EmployeeID == employeeID && req.Status == status {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.requests[id]; !ok {
		return attendance.ErrLeaveRequestNotFound
	}
	delete(f.requests, id)
	return nil
}

// fakeTxBeginner satisfies postgresql.TxBeginner so the approval workflows,
// which wrap their writes in WithTransaction, run against the in-memory fakes.
type fakeTxBeginner struct{}

func (fakeTxBeginner) BeginTx(ctx context.Context) (pgx.Tx, error) { return fakeTx{}, nil }

type fakeTx struct{}

func (fakeTx) Begin(ctx context.Context) (pgx.Tx, error) { return fakeTx{}, nil }
func (fakeTx) Commit(ctx context.Context) error          { return nil }
func (fakeTx) Rollback(ctx context.Context) error        { return nil }
func (fakeTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (fakeTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (fakeTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (fakeTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (fakeTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}
func (fakeTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (fakeTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row { return nil }
func (fakeTx) Conn() *pgx.Conn                                               { return nil }

// at builds a clock frozen at the given wall time on 2025-03-14.
func at(hour, minute int) func() time.Time {
	return func() time.Time {
		return time.Date(2025, 3, 14, hour, minute, 0, 0, time.UTC)
	}
}

var today = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

func newTestService(records attendance.Repository, overtime *fakeOvertimeRepo, clock func() time.Time) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		db:            fakeTxBeginner{},
		recordRepo:    records,
		overtimeRepo:  overtime,
		forgottenRepo: newFakeForgottenRepo(records),
		leaveRepo:     newFakeLeaveRepo(records),
		now:           clock,
	}
}

func TestCheckInHappyPath(t *testing.T) {
	records := newFakeRecordRepo()
	rec := records.seed(1, today)
	svc := newTestService(records, newFakeOvertimeRepo(records), at(8, 15))
	identity := auth.Identity{Role: auth.RoleEmployee, SubjectID: 1}

	require.NoError(t, svc.CheckIn(context.Background(), identity, today))

	updated, err := records.GetByID(context.Background(), rec.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.CheckIn)
	assert.Equal(t, "08:15", updated.CheckIn.String())
	assert.Nil(t, updated.Status, "day is not classified until check-out")
}

func TestCheckOutClassifiesLateArrival(t *testing.T) {
	records := newFakeRecordRepo()
	rec := records.seed(1, today)
	checkIn := attendance.NewTimeOfDay(8, 45)
	rec.CheckIn = &checkIn
	require.NoError(t, records.Update(context.Background(), rec))

	svc := newTestService(records, newFakeOvertimeRepo(records), at(17, 30))
	identity := auth.Identity{Role: auth.RoleEmployee, SubjectID: 1}

	require.NoError(t, svc.CheckOut(context.Background(), identity, today))

	updated, _ := records.GetByID(context.Background(), rec.ID)
	require.NotNil(t, updated.Status)
	assert.Equal(t, attendance.StatusLate, *updated.Status)
}

func TestCheckInWindowEnforced(t *testing.T) {
	records := newFakeRecordRepo()
	records.seed(1, today)
	identity := auth.Identity{Role: auth.RoleEmployee, SubjectID: 1}

	svc := newTestService(records, newFakeOvertimeRepo(records), at(7, 59))
	assert.ErrorIs(t, svc.CheckIn(context.Background(), identity, today), attendance.ErrCheckInWindowClosed)

	svc = newTestService(records, newFakeOvertimeRepo(records), at(9, 1))
	assert.ErrorIs(t, svc.CheckIn(context.Background(), identity, today), attendance.ErrCheckInWindowClosed)
}

func TestCheckInRequiresToday(t *testing.T) {
	records := newFakeRecordRepo()
	records.seed(1, today.AddDate(0, 0, -1))
	svc := newTestService(records, newFakeOvertimeRepo(records), at(8, 15))
	identity := auth.Identity{Role: auth.RoleEmployee, SubjectID: 1}

	err := svc.CheckIn(context.Background(), identity, today.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, attendance.ErrNotToday)
}

func TestCheckInTwiceRejected(t *testing.T) {
	records := newFakeRecordRepo()
	records.seed(1, today)
	svc := newTestService(records, newFakeOvertimeRepo(records), at(8, 15))
	identity := auth.Identity{Role: auth.RoleEmployee, SubjectID: 1}

	require.NoError(t, svc.CheckIn(context.Background(), identity, today))
	assert.ErrorIs(t, svc.CheckIn(context.Background(), identity, today), attendance.ErrAlreadyCheckedIn)
}

func TestCheckInConcurrentLoserFails(t *testing.T) {
	// Both calls read the record before either writes; the second write must
	// fail instead of overwriting the first.
	records := newFakeRecordRepo()
	rec := records.seed(1, today)
	stale := newStaleReadRepo(records)
	identity := auth.Identity{Role: auth.RoleEmployee, SubjectID: 1}

	first := newTestService(stale, newFakeOvertimeRepo(records), at(8, 5))
	require.NoError(t, first.CheckIn(context.Background(), identity, today))

	second := newTestService(stale, newFakeOvertimeRepo(records), at(8, 20))
	assert.ErrorIs(t, second.CheckIn(context.Background(), identity, today), attendance.ErrAlreadyCheckedIn)

	final, err := records.GetByID(context.Background(), rec.ID)
	require.NoError(t, err)
	require.NotNil(t, final.CheckIn)
	assert.Equal(t, "08:05", final.CheckIn.String())
}

func TestCheckOutConcurrentLoserFails(t *testing.T) {
	records := newFakeRecordRepo()
	rec := records.seed(1, today)
	checkIn := attendance.NewTimeOfDay(8, 10)
	rec.CheckIn = &checkIn
	require.NoError(t, records.Update(context.Background(), rec))
	stale := newStaleReadRepo(records)
	identity := auth.Identity{Role: auth.RoleEmployee, SubjectID: 1}

	first := newTestService(stale, newFakeOvertimeRepo(records), at(17, 5))
	require.NoError(t, first.CheckOut(context.Background(), identity, today))

	second := newTestService(stale, newFakeOvertimeRepo(records), at(17, 20))
	assert.ErrorIs(t, second.CheckOut(context.Background(), identity, today), attendance.ErrAlreadyCheckedOut)

	final, err := records.GetByID(context.Background(), rec.ID)
	require.NoError(t, err)
	require.NotNil(t, final.CheckOut)
	assert.Equal(t, "17:05", final.CheckOut.String())
}

func TestCheckInWithoutRecord(t *testing.T) {
	records := newFakeRecordRepo()
	svc := newTestService(records, newFakeOvertimeRepo(records), at(8, 15))
	identity := auth.Identity{Role: auth.RoleEmployee, SubjectID: 1}

	assert.ErrorIs(t, svc.CheckIn(context.Background(), identity, today), attendance.ErrRecordNotFound)
}

func TestCheckOutAccruesApprovedOvertime(t *testing.T) {
	records := newFakeRecordRepo()
	rec := records.seed(1, today)
	checkIn := attendance.NewTimeOfDay(8, 10)
	rec.CheckIn = &checkIn
	rec.OvertimeApproved = true
	require.NoError(t, records.Update(context.Background(), rec))

	svc := newTestService(records, newFakeOvertimeRepo(records), at(18, 15))
	identity := auth.Identity{Role: auth.RoleEmployee, SubjectID: 1}

	require.NoError(t, svc.CheckOut(context.Background(), identity, today))

	updated, _ := records.GetByID(context.Background(), rec.ID)
	require.NotNil(t, updated.CheckOut)
	assert.Equal(t, "18:15", updated.CheckOut.String())
	assert.Equal(t, "1.25", updated.OvertimeHours.String())
	require.NotNil(t, updated.Status)
	assert.Equal(t, attendance.StatusPresent, *updated.Status)
}

func TestCheckOutWithoutApprovalNoOvertime(t *testing.T) {
	records := newFakeRecordRepo()
	rec := records.seed(1, today)
	checkIn := attendance.NewTimeOfDay(8, 10)
	rec.CheckIn = &checkIn
	require.NoError(t, records.Update(context.Background(), rec))

	svc := newTestService(records, newFakeOvertimeRepo(records), at(19, 0))
	identity := auth.Identity{Role: auth.RoleEmployee, SubjectID: 1}

	require.NoError(t, svc.CheckOut(context.Background(), identity, today))

	updated, _ := records.GetByID(context.Background(), rec.ID)
	assert.True(t, updated.OvertimeHours.IsZero())
}

func TestCheckOutTooEarly(t *testing.T) {
	records := newFakeRecordRepo()
	rec := records.seed(1, today)
	checkIn := attendance.NewTimeOfDay(8, 10)
	rec.CheckIn = &checkIn
	require.NoError(t, records.Update(context.Background(), rec))

	svc := newTestService(records, newFakeOvertimeRepo(records), at(16, 59))
	identity := auth.Identity{Role: auth.RoleEmployee, SubjectID: 1}

	assert.ErrorIs(t, svc.CheckOut(context.Background(), identity, today), attendance.ErrCheckOutTooEarly)
}

func TestCheckOutRequiresCheckIn(t *testing.T) {
	records := newFakeRecordRepo()
	records.seed(1, today)
	svc := newTestService(records, newFakeOvertimeRepo(records), at(17, 30))
	identity := auth.Identity{Role: auth.RoleEmployee, SubjectID: 1}

	assert.ErrorIs(t, svc.CheckOut(context.Background(), identity, today), attendance.ErrNotCheckedIn)
}

func TestRequestOvertimeMustBeFuture(t *testing.T) {
	records := newFakeRecordRepo()
	records.seed(1, today)
	svc := newTestService(records, newFakeOvertimeRepo(records), at(10, 0))
	identity := auth.Identity{Role: auth.RoleEmployee, SubjectID: 1}

	assert.ErrorIs(t, svc.RequestOvertime(context.Background(), identity, today), attendance.ErrOvertimeDateNotFuture)
	assert.ErrorIs(t, svc.RequestOvertime(context.Background(), identity, today.AddDate(0, 0, -1)), attendance.ErrOvertimeDateNotFuture)
}

func TestRequestOvertimeDuplicateRejected(t *testing.T) {
	tomorrow := today.AddDate(0, 0, 1)
	records := newFakeRecordRepo()
	records.seed(1, tomorrow)
	overtime := newFakeOvertimeRepo(records)
	svc := newTestService(records, overtime, at(10, 0))
	identity := auth.Identity{Role: auth.RoleEmployee, SubjectID: 1}

	require.NoError(t, svc.RequestOvertime(context.Background(), identity, tomorrow))
	assert.ErrorIs(t, svc.RequestOvertime(context.Background(), identity, tomorrow), attendance.ErrOvertimeRequestExists)
}

func TestApproveOvertimeArmsRecord(t *testing.T) {
	tomorrow := today.AddDate(0, 0, 1)
	records := newFakeRecordRepo()
	rec := records.seed(1, tomorrow)
	overtime := newFakeOvertimeRepo(records)
	svc := newTestService(records, overtime, at(10, 0))
	identity := auth.Identity{Role: auth.RoleEmployee, SubjectID: 1}

	require.NoError(t, svc.RequestOvertime(context.Background(), identity, tomorrow))
	require.NoError(t, svc.ApproveOvertime(context.Background(), 1, tomorrow))

	updated, _ := records.GetByID(context.Background(), rec.ID)
	assert.True(t, updated.OvertimeApproved)

	req, err := overtime.GetByRecordID(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, attendance.RequestStatusApproved, req.Status)
}

func TestRejectOvertimeDisarmsRecord(t *testing.T) {
	tomorrow := today.AddDate(0, 0, 1)
	records := newFakeRecordRepo()
	rec := records.seed(1, tomorrow)
	overtime := newFakeOvertimeRepo(records)
	svc := newTestService(records, overtime, at(10, 0))
	identity := auth.Identity{Role: auth.RoleEmployee, SubjectID: 1}

	require.NoError(t, svc.RequestOvertime(context.Background(), identity, tomorrow))
	require.NoError(t, svc.ApproveOvertime(context.Background(), 1, tomorrow))
	require.NoError(t, svc.RejectOvertime(context.Background(), 1, tomorrow))

	updated, _ := records.GetByID(context.Background(), rec.ID)
	assert.False(t, updated.OvertimeApproved)

	req, err := overtime.GetByRecordID(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, attendance.RequestStatusRejected, req.Status)
}

func TestWithdrawOvertimeRequest(t *testing.T) {
	tomorrow := today.AddDate(0, 0, 1)
	records := newFakeRecordRepo()
	records.seed(1, tomorrow)
	overtime := newFakeOvertimeRepo(records)
	svc := newTestService(records, overtime, at(10, 0))
	identity := auth.Identity{Role: auth.RoleEmployee, SubjectID: 1}

	require.NoError(t, svc.RequestOvertime(context.Background(), identity, tomorrow))
	require.NoError(t, svc.WithdrawOvertimeRequest(context.Background(), identity, tomorrow))

	_, err := overtime.GetByEmployeeAndDate(context.Background(), 1, tomorrow)
	assert.ErrorIs(t, err, attendance.ErrOvertimeRequestNotFound)
}

func TestApproveForgottenCheckoutSettlesStatus(t *testing.T) {
	yesterday := today.AddDate(0, 0, -1)
	records := newFakeRecordRepo()
	rec := records.seed(1, yesterday)
	checkIn := attendance.NewTimeOfDay(8, 20)
	rec.CheckIn = &checkIn
	require.NoError(t, records.Update(context.Background(), rec))

	svc := newTestService(records, newFakeOvertimeRepo(records), at(10, 0))
	identity := auth.Identity{Role: auth.RoleEmployee, SubjectID: 1}

	require.NoError(t, svc.ReportForgottenCheckout(context.Background(), identity, yesterday, nil))
	require.NoError(t, svc.ApproveForgottenCheckout(context.Background(), 1, yesterday))

	updated, _ := records.GetByID(context.Background(), rec.ID)
	require.NotNil(t, updated.Status)
	assert.Equal(t, attendance.StatusPresent, *updated.Status)
	assert.Nil(t, updated.CheckOut, "approval never fills the missing check-out")

	req, err := svc.forgottenRepo.GetByRecordID(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, attendance.RequestStatusApproved, req.Status)
}

func TestApproveForgottenCheckoutLateArrival(t *testing.T) {
	yesterday := today.AddDate(0, 0, -1)
	records := newFakeRecordRepo()
	rec := records.seed(1, yesterday)
	checkIn := attendance.NewTimeOfDay(9, 0)
	rec.CheckIn = &checkIn
	require.NoError(t, records.Update(context.Background(), rec))

	svc := newTestService(records, newFakeOvertimeRepo(records), at(10, 0))
	identity := auth.Identity{Role: auth.RoleEmployee, SubjectID: 1}

	require.NoError(t, svc.ReportForgottenCheckout(context.Background(), identity, yesterday, nil))
	require.NoError(t, svc.ApproveForgottenCheckout(context.Background(), 1, yesterday))

	updated, _ := records.GetByID(context.Background(), rec.ID)
	require.NotNil(t, updated.Status)
	assert.Equal(t, attendance.StatusLate, *updated.Status)
}

func TestRejectForgottenCheckoutClearsStatus(t *testing.T) {
	yesterday := today.AddDate(0, 0, -1)
	records := newFakeRecordRepo()
	rec := records.seed(1, yesterday)
	checkIn := attendance.NewTimeOfDay(8, 20)
	rec.CheckIn = &checkIn
	require.NoError(t, records.Update(context.Background(), rec))

	svc := newTestService(records, newFakeOvertimeRepo(records), at(10, 0))
	identity := auth.Identity{Role: auth.RoleEmployee, SubjectID: 1}

	require.NoError(t, svc.ReportForgottenCheckout(context.Background(), identity, yesterday, nil))
	require.NoError(t, svc.ApproveForgottenCheckout(context.Background(), 1, yesterday))
	require.NoError(t, svc.RejectForgottenCheckout(context.Background(), 1, yesterday))

	updated, _ := records.GetByID(context.Background(), rec.ID)
	assert.Nil(t, updated.Status, "rejection clears the day back to unresolved")

	req, err := svc.forgottenRepo.GetByRecordID(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, attendance.RequestStatusRejected, req.Status)
}

func TestRequestLeaveNoticeWindow(t *testing.T) {
	records := newFakeRecordRepo()
	records.seed(1, today.AddDate(0, 0, 1))
	records.seed(1, today.AddDate(0, 0, 2))
	records.seed(1, today.AddDate(0, 0, 3))
	svc := newTestService(records, newFakeOvertimeRepo(records), at(10, 0))
	identity := auth.Identity{Role: auth.RoleEmployee, SubjectID: 1}

	assert.ErrorIs(t, svc.RequestLeave(context.Background(), identity, today.AddDate(0, 0, 1), nil), attendance.ErrLeaveDateTooSoon)
	assert.NoError(t, svc.RequestLeave(context.Background(), identity, today.AddDate(0, 0, 2), nil))
	assert.NoError(t, svc.RequestLeave(context.Background(), identity, today.AddDate(0, 0, 3), nil))
}

func TestApproveLeaveMarksDayOnLeave(t *testing.T) {
	future := today.AddDate(0, 0, 3)
	records := newFakeRecordRepo()
	rec := records.seed(1, future)
	svc := newTestService(records, newFakeOvertimeRepo(records), at(10, 0))
	identity := auth.Identity{Role: auth.RoleEmployee, SubjectID: 1}

	require.NoError(t, svc.RequestLeave(context.Background(), identity, future, nil))
	require.NoError(t, svc.ApproveLeave(context.Background(), 1, future))

	updated, _ := records.GetByID(context.Background(), rec.ID)
	require.NotNil(t, updated.Status)
	assert.Equal(t, attendance.StatusOnLeave, *updated.Status)

	req, err := svc.leaveRepo.GetByRecordID(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, attendance.RequestStatusApproved, req.Status)
}

func TestRejectLeaveClearsStatus(t *testing.T) {
	future := today.AddDate(0, 0, 3)
	records := newFakeRecordRepo()
	rec := records.seed(1, future)
	svc := newTestService(records, newFakeOvertimeRepo(records), at(10, 0))
	identity := auth.Identity{Role: auth.RoleEmployee, SubjectID: 1}

	require.NoError(t, svc.RequestLeave(context.Background(), identity, future, nil))
	require.NoError(t, svc.ApproveLeave(context.Background(), 1, future))
	require.NoError(t, svc.RejectLeave(context.Background(), 1, future))

	updated, _ := records.GetByID(context.Background(), rec.ID)
	assert.Nil(t, updated.Status)

	req, err := svc.leaveRepo.GetByRecordID(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, attendance.RequestStatusRejected, req.Status)
}

func TestListRequestsRejectsBadStatus(t *testing.T) {
	records := newFakeRecordRepo()
	svc := newTestService(records, newFakeOvertimeRepo(records), at(10, 0))

	_, err := svc.ListOvertimeRequests(context.Background(), attendance.RequestStatus("bogus"))
	assert.ErrorIs(t, err, attendance.ErrInvalidRequestStatus)
}
