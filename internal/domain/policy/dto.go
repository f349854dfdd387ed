package policy

import (
	"github.com/shopspring/decimal"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

type ParametersResponse struct {
	LatePenalty            decimal.Decimal `json:"late_penalty"`
	OverQuotaLeavePenalty  decimal.Decimal `json:"over_quota_leave_penalty"`
	UnapprovedLeavePenalty decimal.Decimal `json:"unapproved_leave_penalty"`
	OvertimeBonusRate      decimal.Decimal `json:"overtime_bonus_rate"`
	MonthlyLeaveQuota      int             `json:"monthly_leave_quota"`
}

func NewParametersResponse(p Parameters) ParametersResponse {
	return ParametersResponse{
		LatePenalty:            p.LatePenalty,
		OverQuotaLeavePenalty:  p.OverQuotaLeavePenalty,
		UnapprovedLeavePenalty: p.UnapprovedLeavePenalty,
		OvertimeBonusRate:      p.OvertimeBonusRate,
		MonthlyLeaveQuota:      p.MonthlyLeaveQuota,
	}
}

type UpdateParametersRequest struct {
	LatePenalty            decimal.Decimal `json:"late_penalty"`
	OverQuotaLeavePenalty  decimal.Decimal `json:"over_quota_leave_penalty"`
	UnapprovedLeavePenalty decimal.Decimal `json:"unapproved_leave_penalty"`
	OvertimeBonusRate      decimal.Decimal `json:"overtime_bonus_rate"`
	MonthlyLeaveQuota      int             `json:"monthly_leave_quota"`
}

func (r *UpdateParametersRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.LatePenalty.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "late_penalty",
			Message: "late_penalty must not be negative",
		})
	}
	if r.OverQuotaLeavePenalty.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "over_quota_leave_penalty",
			Message: "over_quota_leave_penalty must not be negative",
		})
	}
	if r.UnapprovedLeavePenalty.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "unapproved_leave_penalty",
			Message: "unapproved_leave_penalty must not be negative",
		})
	}
	if r.OvertimeBonusRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "overtime_bonus_rate",
			Message: "overtime_bonus_rate must not be negative",
		})
	}
	if r.MonthlyLeaveQuota < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "monthly_leave_quota",
			Message: "monthly_leave_quota must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
