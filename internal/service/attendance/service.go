package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fitcore/gym-backend-go/internal/domain/attendance"
	"github.com/fitcore/gym-backend-go/internal/domain/staff"
	"github.com/go-chi/jwtauth/v5"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	staff.StaffRepository
	now func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	staffRepo staff.StaffRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		StaffRepository:      staffRepo,
		now:                  time.Now,
	}
}

func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}

// punchMinutes resolves the effective clock time: the request override when
// present, otherwise the current wall clock.
func (s *AttendanceServiceImpl) punchMinutes(req attendance.PunchRequest) (int, error) {
	if req.Time != "" {
		return staff.ParseClock(req.Time)
	}
	now := s.now()
	return now.Hour()*60 + now.Minute(), nil
}

// PunchIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) PunchIn(ctx context.Context, req attendance.PunchRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	member, err := s.StaffRepository.GetByID(ctx, userID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	timeIn, err := s.punchMinutes(req)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	today := s.today()

	_, err = s.AttendanceRepository.GetOpenForUser(ctx, userID, today)
	if err == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyPunchedIn
	}
	if !errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check open session: %w", err)
	}

	shift, shiftIndex, matched := staff.MatchShift(member.Shifts, timeIn)
	if !matched {
		return attendance.AttendanceResponse{}, attendance.ErrOutsideShiftWindow
	}

	late := 0
	if timeIn > shift.Start {
		late = timeIn - shift.Start
	}

	created, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
		UserID:      userID,
		Date:        today,
		TimeIn:      timeIn,
		BranchID:    member.BranchID,
		Type:        attendance.TypeStaff,
		ShiftIndex:  &shiftIndex,
		LateMinutes: &late,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return attendance.ToResponse(created), nil
}

// PunchOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) PunchOut(ctx context.Context, req attendance.PunchRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	member, err := s.StaffRepository.GetByID(ctx, userID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	timeOut, err := s.punchMinutes(req)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	open, err := s.AttendanceRepository.GetOpenForUser(ctx, userID, s.today())
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNotPunchedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to load open session: %w", err)
	}

	open.TimeOut = &timeOut

	// Early-out is measured against the shift the check-in was attributed to.
	if open.ShiftIndex != nil && *open.ShiftIndex < len(member.Shifts) {
		shift := member.Shifts[*open.ShiftIndex]
		early := 0
		if timeOut < shift.End {
			early = shift.End - timeOut
		}
		open.EarlyOutMinutes = &early
	}

	if err := s.AttendanceRepository.Update(ctx, open); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to close attendance session: %w", err)
	}

	return attendance.ToResponse(open), nil
}

// ListMyMonth implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListMyMonth(ctx context.Context, year int, month int) ([]attendance.AttendanceResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be between 1 and 12")
	}

	records, err := s.AttendanceRepository.ListForUserMonth(ctx, userID, year, time.Month(month))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec))
	}
	return responses, nil
}

func (s *AttendanceServiceImpl) today() time.Time {
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
