package payroll

import (
	"github.com/fitcore/gym-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type StatementRequest struct {
	StaffID string
	Year    int
	Month   int
}

func (r *StatementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "is required"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < 2020 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be 2020 or later"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StatementResponse struct {
	StaffID          string          `json:"staff_id"`
	StaffName        string          `json:"staff_name"`
	Year             int             `json:"year"`
	Month            int             `json:"month"`
	TotalDaysWorked  int             `json:"total_days_worked"`
	TotalHoursWorked decimal.Decimal `json:"total_hours_worked"`
	BaseSalary       decimal.Decimal `json:"base_salary"`
	WeekOffsTaken    int             `json:"week_offs_taken"`
	WeekOffPay       decimal.Decimal `json:"week_off_pay"`
	HolidayPay       decimal.Decimal `json:"holiday_pay"`
	CommissionEarned decimal.Decimal `json:"commission_earned"`
	LateDays         int             `json:"late_days"`
	EarlyOutDays     int             `json:"early_out_days"`
	TotalEarnings    decimal.Decimal `json:"total_earnings"`
	// Tax and provident-fund deductions are not modeled; net equals earnings.
	NetPay decimal.Decimal `json:"net_pay"`
}
