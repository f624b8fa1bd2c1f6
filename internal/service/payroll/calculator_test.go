package payroll

import (
	"testing"
	"time"

	"github.com/fitcore/gym-backend-go/internal/domain/attendance"
	"github.com/fitcore/gym-backend-go/internal/domain/booking"
	"github.com/fitcore/gym-backend-go/internal/domain/holiday"
	"github.com/fitcore/gym-backend-go/internal/domain/staff"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testOptions() Options {
	return Options{
		MaxHoursPerDay:    dec("8"),
		DefaultHourlyRate: dec("500"),
		SessionValue:      dec("500"),
	}
}

func testStaff(role staff.Role) staff.Staff {
	rate := dec("500")
	return staff.Staff{
		ID:         "staff-1",
		FullName:   "Alex",
		BranchID:   "branch-1",
		Role:       role,
		HourlyRate: &rate,
		Shifts:     []staff.Shift{{Start: 540, End: 1020}}, // 09:00-17:00
	}
}

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
}

func punch(d, in, out int) attendance.Attendance {
	return attendance.Attendance{
		UserID:  "staff-1",
		Date:    day(d),
		TimeIn:  in,
		TimeOut: &out,
		Type:    attendance.TypeStaff,
	}
}

func assertDecEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got.String())
}

func TestCalculate_HoursAndBaseSalary(t *testing.T) {
	t.Run("early arrival within grace, hours capped", func(t *testing.T) {
		// Check-in 08:45, check-out 17:30 against a 09:00-17:00 shift. Raw
		// span is 8.75h; the daily cap trims it to 8h.
		in := Inputs{
			Staff:      testStaff(staff.RoleTrainer),
			Year:       2026,
			Month:      time.March,
			Attendance: []attendance.Attendance{punch(2, 525, 1050)},
		}

		got := Calculate(in, testOptions())

		assert.Equal(t, 1, got.TotalDaysWorked)
		assertDecEqual(t, "8", got.TotalHoursWorked)
		assertDecEqual(t, "4000", got.BaseSalary)
		assert.Equal(t, 0, got.LateDays)
		assert.Equal(t, 0, got.EarlyOutDays)
	})

	t.Run("uncapped hours pay at the raw span", func(t *testing.T) {
		opts := testOptions()
		opts.MaxHoursPerDay = dec("10")

		in := Inputs{
			Staff:      testStaff(staff.RoleTrainer),
			Year:       2026,
			Month:      time.March,
			Attendance: []attendance.Attendance{punch(2, 525, 1050)},
		}

		got := Calculate(in, opts)

		assertDecEqual(t, "8.75", got.TotalHoursWorked)
		assertDecEqual(t, "4375", got.BaseSalary)
	})

	t.Run("missing hourly rate falls back to the default", func(t *testing.T) {
		member := testStaff(staff.RoleReceptionist)
		member.HourlyRate = nil

		got := Calculate(Inputs{
			Staff:      member,
			Year:       2026,
			Month:      time.March,
			Attendance: []attendance.Attendance{punch(2, 540, 1020)},
		}, testOptions())

		assertDecEqual(t, "4000", got.BaseSalary) // 8h at the 500 fallback
	})

	t.Run("open sessions contribute nothing", func(t *testing.T) {
		open := attendance.Attendance{
			UserID: "staff-1",
			Date:   day(2),
			TimeIn: 540,
			Type:   attendance.TypeStaff,
		}

		got := Calculate(Inputs{
			Staff:      testStaff(staff.RoleTrainer),
			Year:       2026,
			Month:      time.March,
			Attendance: []attendance.Attendance{open},
		}, testOptions())

		assert.Equal(t, 0, got.TotalDaysWorked)
		assert.True(t, got.TotalHoursWorked.IsZero())
	})

	t.Run("unmatched punch counts the day with zero hours", func(t *testing.T) {
		// 06:00 check-in is before the 08:30 grace boundary of the only shift.
		got := Calculate(Inputs{
			Staff:      testStaff(staff.RoleTrainer),
			Year:       2026,
			Month:      time.March,
			Attendance: []attendance.Attendance{punch(2, 360, 840)},
		}, testOptions())

		assert.Equal(t, 1, got.TotalDaysWorked)
		assert.True(t, got.TotalHoursWorked.IsZero())
		assert.True(t, got.BaseSalary.IsZero())
	})

	t.Run("member records and other months are excluded", func(t *testing.T) {
		memberRec := punch(3, 540, 1020)
		memberRec.Type = attendance.TypeMember
		otherMonth := punch(3, 540, 1020)
		otherMonth.Date = time.Date(2026, time.April, 3, 0, 0, 0, 0, time.UTC)
		otherUser := punch(3, 540, 1020)
		otherUser.UserID = "staff-2"

		got := Calculate(Inputs{
			Staff:      testStaff(staff.RoleTrainer),
			Year:       2026,
			Month:      time.March,
			Attendance: []attendance.Attendance{memberRec, otherMonth, otherUser},
		}, testOptions())

		assert.Equal(t, 0, got.TotalDaysWorked)
	})
}

func TestCalculate_LateAndEarlyOut(t *testing.T) {
	got := Calculate(Inputs{
		Staff: testStaff(staff.RoleTrainer),
		Year:  2026,
		Month: time.March,
		Attendance: []attendance.Attendance{
			punch(2, 555, 1020), // 15 min late
			punch(3, 540, 960),  // out an hour early
			punch(4, 540, 1020), // on time both ways
		},
	}, testOptions())

	assert.Equal(t, 3, got.TotalDaysWorked)
	assert.Equal(t, 1, got.LateDays)
	assert.Equal(t, 1, got.EarlyOutDays)
}

func TestCalculate_WeekOffPay(t *testing.T) {
	tests := []struct {
		daysWorked  int
		wantCredits int
		wantPay     string
	}{
		{daysWorked: 5, wantCredits: 0, wantPay: "0"},
		{daysWorked: 6, wantCredits: 1, wantPay: "4000"},
		{daysWorked: 11, wantCredits: 1, wantPay: "4000"},
		{daysWorked: 12, wantCredits: 2, wantPay: "8000"},
	}

	for _, tt := range tests {
		records := make([]attendance.Attendance, 0, tt.daysWorked)
		for d := 1; d <= tt.daysWorked; d++ {
			records = append(records, punch(d, 540, 1020))
		}

		got := Calculate(Inputs{
			Staff:      testStaff(staff.RoleReceptionist),
			Year:       2026,
			Month:      time.March,
			Attendance: records,
		}, testOptions())

		assert.Equal(t, tt.wantCredits, got.WeekOffsTaken, "%d days", tt.daysWorked)
		assertDecEqual(t, tt.wantPay, got.WeekOffPay)
	}
}

func TestCalculate_HolidayPay(t *testing.T) {
	holidays := []holiday.Holiday{
		{Name: "Founders Day", Date: day(10), BranchID: holiday.BranchAll},
		{Name: "Branch Opening", Date: day(15), BranchID: "branch-1"},
		{Name: "Elsewhere", Date: day(20), BranchID: "branch-9"},
		{Name: "Next Month", Date: time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), BranchID: holiday.BranchAll},
	}

	// No attendance at all; holiday pay is a flat entitlement.
	got := Calculate(Inputs{
		Staff:    testStaff(staff.RoleTrainer),
		Year:     2026,
		Month:    time.March,
		Holidays: holidays,
	}, testOptions())

	assertDecEqual(t, "8000", got.HolidayPay) // two applicable holidays at 8h x 500
	assertDecEqual(t, "8000", got.TotalEarnings)
}

func TestCalculate_Commission(t *testing.T) {
	t.Run("trainer earns per completed session", func(t *testing.T) {
		trainer := testStaff(staff.RoleTrainer)
		trainer.CommissionPercentage = dec("10")

		bookings := []booking.Booking{
			{TrainerID: "staff-1", Status: booking.StatusCompleted, Date: day(2)},
			{TrainerID: "staff-1", Status: booking.StatusCompleted, Date: day(3)},
			{TrainerID: "staff-1", Status: booking.StatusCompleted, Date: day(4)},
			{TrainerID: "staff-1", Status: booking.StatusBooked, Date: day(5)},
			{TrainerID: "staff-1", Status: booking.StatusCancelled, Date: day(6)},
			{TrainerID: "staff-2", Status: booking.StatusCompleted, Date: day(7)},
		}

		got := Calculate(Inputs{
			Staff:    trainer,
			Year:     2026,
			Month:    time.March,
			Bookings: bookings,
		}, testOptions())

		// 3 completed sessions x 500 basis x 10%
		assertDecEqual(t, "150", got.CommissionEarned)
	})

	t.Run("manager earns a cut of branch sales", func(t *testing.T) {
		manager := testStaff(staff.RoleManager)
		manager.CommissionPercentage = dec("2")

		got := Calculate(Inputs{
			Staff:       manager,
			Year:        2026,
			Month:       time.March,
			BranchSales: dec("100000"),
		}, testOptions())

		assertDecEqual(t, "2000", got.CommissionEarned)
	})

	t.Run("zero percentage earns nothing", func(t *testing.T) {
		got := Calculate(Inputs{
			Staff:       testStaff(staff.RoleManager),
			Year:        2026,
			Month:       time.March,
			BranchSales: dec("100000"),
		}, testOptions())

		assert.True(t, got.CommissionEarned.IsZero())
	})
}

func TestCalculate_TotalsAndIdempotence(t *testing.T) {
	trainer := testStaff(staff.RoleTrainer)
	trainer.CommissionPercentage = dec("10")

	in := Inputs{
		Staff: trainer,
		Year:  2026,
		Month: time.March,
		Attendance: []attendance.Attendance{
			punch(1, 540, 1020), punch(2, 540, 1020), punch(3, 540, 1020),
			punch(4, 540, 1020), punch(5, 540, 1020), punch(6, 540, 1020),
		},
		Bookings: []booking.Booking{
			{TrainerID: "staff-1", Status: booking.StatusCompleted, Date: day(2)},
		},
		Holidays: []holiday.Holiday{
			{Name: "Founders Day", Date: day(10), BranchID: holiday.BranchAll},
		},
	}

	first := Calculate(in, testOptions())
	second := Calculate(in, testOptions())

	// base 6x8x500 + one week-off 4000 + one holiday 4000 + commission 50
	assertDecEqual(t, "24000", first.BaseSalary)
	assertDecEqual(t, "32050", first.TotalEarnings)
	assert.True(t, first.NetPay.Equal(first.TotalEarnings))
	assert.Equal(t, first, second)
}
