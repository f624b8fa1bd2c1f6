package http

import (
	"net/http"
	"strconv"

	"github.com/fitcore/gym-backend-go/internal/domain/payroll"
	"github.com/fitcore/gym-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	GetStatement(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// GetStatement implements PayrollHandler. The statement is derived fresh from
// source records on every call; nothing is cached or persisted.
func (h *payrollHandlerImpl) GetStatement(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "Invalid year", nil)
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "Invalid month", nil)
		return
	}

	req := payroll.StatementRequest{
		StaffID: r.URL.Query().Get("staff_id"),
		Year:    year,
		Month:   month,
	}

	result, err := h.payrollService.GenerateMonthlyStatement(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
