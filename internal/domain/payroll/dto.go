package payroll

import "github.com/shopspring/decimal"

type ComputeResponse struct {
	Month              int `json:"month"`
	Year               int `json:"year"`
	EmployeesProcessed int `json:"employees_processed"`
}

type Filter struct {
	EmployeeID *int64
	Name       *string
	Month      *int
	Year       *int
	Page       int
}

type RecordResponse struct {
	EmployeeID   int64           `json:"employee_id"`
	EmployeeName string          `json:"employee_name"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
	OvertimePay  decimal.Decimal `json:"overtime_pay"`
	TotalPenalty decimal.Decimal `json:"total_penalty"`
	Total        decimal.Decimal `json:"total"`
}

func NewRecordResponse(r Record) RecordResponse {
	name := ""
	if r.EmployeeName != nil {
		name = *r.EmployeeName
	}
	return RecordResponse{
		EmployeeID:   r.EmployeeID,
		EmployeeName: name,
		Month:        r.Month,
		Year:         r.Year,
		BaseSalary:   r.BaseSalary,
		OvertimePay:  r.OvertimePay,
		TotalPenalty: r.TotalPenalty,
		Total:        r.Total,
	}
}

type ListRecordsResponse struct {
	TotalPages  int              `json:"total_pages"`
	CurrentPage int              `json:"current_page"`
	Data        []RecordResponse `json:"data"`
}

// DetailResponse is the per-employee monthly breakdown, reconstructed on
// demand from attendance records rather than stored.
type DetailResponse struct {
	TotalOvertimeHours   decimal.Decimal `json:"total_overtime_hours"`
	LateDays             int             `json:"late_days"`
	LeaveDays            int             `json:"leave_days"`
	UnexcusedAbsenceDays int             `json:"unexcused_absence_days"`
}
