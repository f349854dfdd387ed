package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/staffdesk/staffdesk-backend-go/internal/domain/payroll"
	"github.com/staffdesk/staffdesk-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Compute(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Detail(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

type computeBody struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Compute implements PayrollHandler. An empty body computes the previous
// calendar month.
func (h *PayrollHandlerImpl) Compute(w http.ResponseWriter, r *http.Request) {
	var body computeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && err != io.EOF {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.payrollService.Compute(r.Context(), body.Month, body.Year)
	if err != nil {
		slog.Error("Payroll compute failed", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll computed", resp)
}

// List implements PayrollHandler.
func (h *PayrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter payroll.Filter

	if id, ok := parseInt64Query(r, "employee_id"); ok {
		filter.EmployeeID = &id
	}
	if name := r.URL.Query().Get("name"); name != "" {
		filter.Name = &name
	}
	if month, ok := parseIntQuery(r, "month"); ok {
		filter.Month = &month
	}
	if year, ok := parseIntQuery(r, "year"); ok {
		filter.Year = &year
	}
	if page, ok := parseIntQuery(r, "page"); ok {
		filter.Page = page
	}

	resp, err := h.payrollService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}

// Detail implements PayrollHandler.
func (h *PayrollHandlerImpl) Detail(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := parseIDParam(r, "employeeID")
	if !ok {
		response.BadRequest(w, "Invalid employee id", nil)
		return
	}

	month, _ := parseIntQuery(r, "month")
	year, _ := parseIntQuery(r, "year")

	resp, err := h.payrollService.Detail(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, resp)
}
