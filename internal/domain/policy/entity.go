package policy

import "github.com/shopspring/decimal"

// Parameters is the organization-wide singleton of penalty and bonus rules.
// It is read fresh at the start of every payroll computation rather than
// cached in the process.
type Parameters struct {
	ID                     int64
	LatePenalty            decimal.Decimal
	OverQuotaLeavePenalty  decimal.Decimal
	UnapprovedLeavePenalty decimal.Decimal
	OvertimeBonusRate      decimal.Decimal
	MonthlyLeaveQuota      int
}
