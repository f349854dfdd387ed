package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/payroll"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/policy"
)

// monthSummary is one employee's attendance fold for a month.
type monthSummary struct {
	lateDays      int
	leaveDays     int
	absentDays    int
	overtimeHours decimal.Decimal
}

// summarize folds attendance days per employee. A day with no status was
// never resolved and counts as an unapproved absence.
func summarize(days []payroll.AttendanceDay) map[int64]*monthSummary {
	summaries := make(map[int64]*monthSummary)
	for _, d := range days {
		sum, ok := summaries[d.EmployeeID]
		if !ok {
			sum = &monthSummary{}
			summaries[d.EmployeeID] = sum
		}

		switch {
		case d.Status == nil:
			sum.absentDays++
		case *d.Status == payroll.DayStatusLate:
			sum.lateDays++
		case *d.Status == payroll.DayStatusOnLeave:
			sum.leaveDays++
		}
		sum.overtimeHours = sum.overtimeHours.Add(d.OvertimeHours)
	}
	return summaries
}

// computeRecord turns one employee's monthly summary into a payroll record.
// The penalty is capped at base salary plus overtime pay, so the total never
// goes negative.
func computeRecord(employeeID int64, month, year int, baseSalary decimal.Decimal, sum monthSummary, params policy.Parameters) payroll.Record {
	overtimePay := sum.overtimeHours.Mul(params.OvertimeBonusRate)

	penalty := params.LatePenalty.Mul(decimal.NewFromInt(int64(sum.lateDays)))

	if over := sum.leaveDays - params.MonthlyLeaveQuota; over > 0 {
		penalty = penalty.Add(params.OverQuotaLeavePenalty.Mul(decimal.NewFromInt(int64(over))))
	}

	penalty = penalty.Add(params.UnapprovedLeavePenalty.Mul(decimal.NewFromInt(int64(sum.absentDays))))

	earned := baseSalary.Add(overtimePay)
	if penalty.GreaterThan(earned) {
		penalty = earned
	}

	return payroll.Record{
		EmployeeID:   employeeID,
		Month:        month,
		Year:         year,
		BaseSalary:   baseSalary,
		OvertimePay:  overtimePay,
		TotalPenalty: penalty,
		Total:        earned.Sub(penalty),
	}
}
