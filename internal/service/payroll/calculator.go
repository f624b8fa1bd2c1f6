package payroll

import (
	"time"

	"github.com/fitcore/gym-backend-go/internal/domain/attendance"
	"github.com/fitcore/gym-backend-go/internal/domain/booking"
	"github.com/fitcore/gym-backend-go/internal/domain/holiday"
	"github.com/fitcore/gym-backend-go/internal/domain/payroll"
	"github.com/fitcore/gym-backend-go/internal/domain/staff"
	"github.com/shopspring/decimal"
)

// workedDaysPerWeekOffCredit is the cadence of paid week-off accrual: one
// credit per completed block of worked days.
const workedDaysPerWeekOffCredit = 6

// Inputs is everything one monthly statement is derived from, already loaded.
// The calculator filters by staff, period and record type itself, so callers
// may pass broader slices than strictly necessary.
type Inputs struct {
	Staff       staff.Staff
	Year        int
	Month       time.Month
	Attendance  []attendance.Attendance
	Bookings    []booking.Booking
	Holidays    []holiday.Holiday
	BranchSales decimal.Decimal
}

// Options are the business knobs, sourced from configuration.
type Options struct {
	MaxHoursPerDay    decimal.Decimal
	DefaultHourlyRate decimal.Decimal
	SessionValue      decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// Calculate derives the monthly pay breakdown. It is a pure function of its
// inputs and never fails: incomplete source data contributes zero to its term.
func Calculate(in Inputs, opts Options) payroll.Statement {
	st := payroll.Statement{
		StaffID: in.Staff.ID,
		Year:    in.Year,
		Month:   int(in.Month),
	}

	rate := opts.DefaultHourlyRate
	if in.Staff.HourlyRate != nil {
		rate = *in.Staff.HourlyRate
	}
	fullDayPay := opts.MaxHoursPerDay.Mul(rate)

	for _, rec := range in.Attendance {
		if rec.Type != attendance.TypeStaff || rec.UserID != in.Staff.ID {
			continue
		}
		if rec.Date.Year() != in.Year || rec.Date.Month() != in.Month {
			continue
		}
		if rec.TimeOut == nil {
			// Open session, nothing to pay yet.
			continue
		}

		st.TotalDaysWorked++

		shift, _, matched := staff.MatchShift(in.Staff.Shifts, rec.TimeIn)
		if !matched {
			// Present but unattributable, the day counts with zero hours.
			continue
		}

		st.TotalHoursWorked = st.TotalHoursWorked.Add(dayHours(rec.TimeIn, *rec.TimeOut, opts.MaxHoursPerDay))

		if rec.TimeIn > shift.Start {
			st.LateDays++
		}
		if *rec.TimeOut < shift.End {
			st.EarlyOutDays++
		}
	}

	st.BaseSalary = st.TotalHoursWorked.Mul(rate)

	st.WeekOffsTaken = st.TotalDaysWorked / workedDaysPerWeekOffCredit
	st.WeekOffPay = fullDayPay.Mul(decimal.NewFromInt(int64(st.WeekOffsTaken)))

	for _, h := range in.Holidays {
		if h.Date.Year() != in.Year || h.Date.Month() != in.Month {
			continue
		}
		if h.AppliesTo(in.Staff.BranchID) {
			st.HolidayPay = st.HolidayPay.Add(fullDayPay)
		}
	}

	st.CommissionEarned = commission(in, opts)

	st.TotalEarnings = st.BaseSalary.
		Add(st.WeekOffPay).
		Add(st.HolidayPay).
		Add(st.CommissionEarned)
	// No tax or provident-fund deductions modeled.
	st.NetPay = st.TotalEarnings

	return st
}

// dayHours converts one punch pair to decimal hours, floored at zero and
// capped so a forgotten checkout cannot inflate the total.
func dayHours(timeIn, timeOut int, maxHours decimal.Decimal) decimal.Decimal {
	minutes := timeOut - timeIn
	if minutes <= 0 {
		return decimal.Zero
	}
	hours := decimal.NewFromInt(int64(minutes)).Div(decimal.NewFromInt(60))
	if hours.GreaterThan(maxHours) {
		return maxHours
	}
	return hours
}

func commission(in Inputs, opts Options) decimal.Decimal {
	pct := in.Staff.CommissionPercentage
	if pct.IsZero() {
		return decimal.Zero
	}

	switch in.Staff.Role {
	case staff.RoleTrainer:
		completed := 0
		for _, b := range in.Bookings {
			if b.TrainerID != in.Staff.ID || b.Status != booking.StatusCompleted {
				continue
			}
			if b.Date.Year() != in.Year || b.Date.Month() != in.Month {
				continue
			}
			completed++
		}
		basis := opts.SessionValue.Mul(decimal.NewFromInt(int64(completed)))
		return basis.Mul(pct).Div(hundred)
	case staff.RoleManager:
		return in.BranchSales.Mul(pct).Div(hundred)
	default:
		return decimal.Zero
	}
}
