package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/fitcore/gym-backend-go/internal/config"
	"github.com/fitcore/gym-backend-go/internal/domain/attendance"
	"github.com/fitcore/gym-backend-go/internal/domain/booking"
	"github.com/fitcore/gym-backend-go/internal/domain/holiday"
	"github.com/fitcore/gym-backend-go/internal/domain/payroll"
	"github.com/fitcore/gym-backend-go/internal/domain/staff"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	staff.StaffRepository
	attendanceRepo attendance.AttendanceRepository
	bookingRepo    booking.BookingRepository
	holidayRepo    holiday.HolidayRepository
	salesRepo      payroll.BranchSalesRepository
	opts           Options
}

func NewPayrollService(
	staffRepo staff.StaffRepository,
	attendanceRepo attendance.AttendanceRepository,
	bookingRepo booking.BookingRepository,
	holidayRepo holiday.HolidayRepository,
	salesRepo payroll.BranchSalesRepository,
	cfg config.PayrollConfig,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		StaffRepository: staffRepo,
		attendanceRepo:  attendanceRepo,
		bookingRepo:     bookingRepo,
		holidayRepo:     holidayRepo,
		salesRepo:       salesRepo,
		opts: Options{
			MaxHoursPerDay:    cfg.MaxHoursPerDay,
			DefaultHourlyRate: cfg.DefaultHourlyRate,
			SessionValue:      cfg.SessionValue,
		},
	}
}

// GenerateMonthlyStatement implements payroll.PayrollService. It loads the
// month's source records and hands them to the pure calculator; only the
// loads can fail, never the computation.
func (s *PayrollServiceImpl) GenerateMonthlyStatement(ctx context.Context, req payroll.StatementRequest) (payroll.StatementResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.StatementResponse{}, err
	}

	member, err := s.StaffRepository.GetByID(ctx, req.StaffID)
	if err != nil {
		return payroll.StatementResponse{}, err
	}

	month := time.Month(req.Month)

	records, err := s.attendanceRepo.ListForUserMonth(ctx, member.ID, req.Year, month)
	if err != nil {
		return payroll.StatementResponse{}, fmt.Errorf("failed to load attendance: %w", err)
	}

	holidays, err := s.holidayRepo.ListForMonth(ctx, req.Year, month)
	if err != nil {
		return payroll.StatementResponse{}, fmt.Errorf("failed to load holidays: %w", err)
	}

	var bookings []booking.Booking
	if member.Role == staff.RoleTrainer {
		bookings, err = s.bookingRepo.ListCompletedForTrainerMonth(ctx, member.ID, req.Year, month)
		if err != nil {
			return payroll.StatementResponse{}, fmt.Errorf("failed to load completed sessions: %w", err)
		}
	}

	branchSales := decimal.Zero
	if member.Role == staff.RoleManager {
		branchSales, err = s.salesRepo.TotalForMonth(ctx, member.BranchID, req.Year, month)
		if err != nil {
			return payroll.StatementResponse{}, fmt.Errorf("failed to load branch sales: %w", err)
		}
	}

	statement := Calculate(Inputs{
		Staff:       member,
		Year:        req.Year,
		Month:       month,
		Attendance:  records,
		Bookings:    bookings,
		Holidays:    holidays,
		BranchSales: branchSales,
	}, s.opts)

	return toResponse(member, statement), nil
}

func toResponse(member staff.Staff, st payroll.Statement) payroll.StatementResponse {
	return payroll.StatementResponse{
		StaffID:          st.StaffID,
		StaffName:        member.FullName,
		Year:             st.Year,
		Month:            st.Month,
		TotalDaysWorked:  st.TotalDaysWorked,
		TotalHoursWorked: st.TotalHoursWorked,
		BaseSalary:       st.BaseSalary,
		WeekOffsTaken:    st.WeekOffsTaken,
		WeekOffPay:       st.WeekOffPay,
		HolidayPay:       st.HolidayPay,
		CommissionEarned: st.CommissionEarned,
		LateDays:         st.LateDays,
		EarlyOutDays:     st.EarlyOutDays,
		TotalEarnings:    st.TotalEarnings,
		NetPay:           st.NetPay,
	}
}
