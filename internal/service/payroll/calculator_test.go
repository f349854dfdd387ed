package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/payroll"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/policy"
	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string { return &s }

func testParams() policy.Parameters {
	return policy.Parameters{
		ID:                     1,
		LatePenalty:            decimal.NewFromInt(50000),
		OverQuotaLeavePenalty:  decimal.NewFromInt(100000),
		UnapprovedLeavePenalty: decimal.NewFromInt(200000),
		OvertimeBonusRate:      decimal.NewFromInt(40000),
		MonthlyLeaveQuota:      2,
	}
}

func TestSummarize(t *testing.T) {
	days := []payroll.AttendanceDay{
		{EmployeeID: 1, Status: strptr("present"), OvertimeHours: decimal.NewFromFloat(1.25)},
		{EmployeeID: 1, Status: strptr("late"), OvertimeHours: decimal.Zero},
		{EmployeeID: 1, Status: nil, OvertimeHours: decimal.Zero},
		{EmployeeID: 1, Status: strptr("on_leave"), OvertimeHours: decimal.Zero},
		{EmployeeID: 2, Status: strptr("late"), OvertimeHours: decimal.NewFromFloat(2.5)},
	}

	summaries := summarize(days)
	assert.Len(t, summaries, 2)

	first := summaries[1]
	assert.Equal(t, 1, first.lateDays)
	assert.Equal(t, 1, first.leaveDays)
	assert.Equal(t, 1, first.absentDays)
	assert.True(t, first.overtimeHours.Equal(decimal.NewFromFloat(1.25)))

	second := summaries[2]
	assert.Equal(t, 1, second.lateDays)
	assert.True(t, second.overtimeHours.Equal(decimal.NewFromFloat(2.5)))
}

func TestComputeRecordLatePenalty(t *testing.T) {
	sum := monthSummary{lateDays: 2, overtimeHours: decimal.Zero}

	rec := computeRecord(1, 2, 2025, decimal.NewFromInt(5000000), sum, testParams())

	assert.True(t, rec.TotalPenalty.Equal(decimal.NewFromInt(100000)), "penalty %s", rec.TotalPenalty)
	assert.True(t, rec.Total.Equal(decimal.NewFromInt(4900000)), "total %s", rec.Total)
}

func TestComputeRecordOvertimePay(t *testing.T) {
	sum := monthSummary{overtimeHours: decimal.NewFromFloat(1.25)}

	rec := computeRecord(1, 2, 2025, decimal.NewFromInt(5000000), sum, testParams())

	assert.True(t, rec.OvertimePay.Equal(decimal.NewFromInt(50000)), "overtime pay %s", rec.OvertimePay)
	assert.True(t, rec.Total.Equal(decimal.NewFromInt(5050000)), "total %s", rec.Total)
}

func TestComputeRecordLeaveQuota(t *testing.T) {
	// Three leave days against a quota of two penalizes only the excess day.
	sum := monthSummary{leaveDays: 3, overtimeHours: decimal.Zero}

	rec := computeRecord(1, 2, 2025, decimal.NewFromInt(5000000), sum, testParams())

	assert.True(t, rec.TotalPenalty.Equal(decimal.NewFromInt(100000)), "penalty %s", rec.TotalPenalty)
}

func TestComputeRecordWithinLeaveQuota(t *testing.T) {
	sum := monthSummary{leaveDays: 2, overtimeHours: decimal.Zero}

	rec := computeRecord(1, 2, 2025, decimal.NewFromInt(5000000), sum, testParams())

	assert.True(t, rec.TotalPenalty.IsZero(), "penalty %s", rec.TotalPenalty)
}

func TestComputeRecordUnapprovedAbsence(t *testing.T) {
	sum := monthSummary{absentDays: 2, overtimeHours: decimal.Zero}

	rec := computeRecord(1, 2, 2025, decimal.NewFromInt(5000000), sum, testParams())

	assert.True(t, rec.TotalPenalty.Equal(decimal.NewFromInt(400000)), "penalty %s", rec.TotalPenalty)
}

func TestComputeRecordPenaltyCap(t *testing.T) {
	// Penalties can never push the total below zero.
	params := testParams()
	params.UnapprovedLeavePenalty = decimal.NewFromInt(999999)
	sum := monthSummary{absentDays: 20, overtimeHours: decimal.Zero}

	rec := computeRecord(1, 2, 2025, decimal.NewFromInt(10000), sum, params)

	assert.True(t, rec.TotalPenalty.Equal(decimal.NewFromInt(10000)), "penalty %s", rec.TotalPenalty)
	assert.True(t, rec.Total.IsZero(), "total %s", rec.Total)
}

func TestComputeRecordPenaltyCapIncludesOvertime(t *testing.T) {
	params := testParams()
	params.UnapprovedLeavePenalty = decimal.NewFromInt(999999)
	sum := monthSummary{absentDays: 20, overtimeHours: decimal.NewFromInt(2)}

	rec := computeRecord(1, 2, 2025, decimal.NewFromInt(10000), sum, params)

	// Cap is base salary plus overtime pay, 10000 + 80000.
	assert.True(t, rec.TotalPenalty.Equal(decimal.NewFromInt(90000)), "penalty %s", rec.TotalPenalty)
	assert.True(t, rec.Total.IsZero(), "total %s", rec.Total)
}
