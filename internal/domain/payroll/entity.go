package payroll

import (
	"github.com/shopspring/decimal"
)

// Statement is the derived monthly pay breakdown for one staff member.
// It is recomputed from source records on every query and never persisted.
type Statement struct {
	StaffID          string
	Year             int
	Month            int
	TotalDaysWorked  int
	TotalHoursWorked decimal.Decimal
	BaseSalary       decimal.Decimal
	WeekOffsTaken    int
	WeekOffPay       decimal.Decimal
	HolidayPay       decimal.Decimal
	CommissionEarned decimal.Decimal
	LateDays         int
	EarlyOutDays     int
	TotalEarnings    decimal.Decimal
	NetPay           decimal.Decimal
}
