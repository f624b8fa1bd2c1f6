package staff

import (
	"context"
	"fmt"
	"time"

	"github.com/fitcore/gym-backend-go/internal/domain/staff"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type StaffServiceImpl struct {
	staff.StaffRepository
}

func NewStaffService(staffRepo staff.StaffRepository) staff.StaffService {
	return &StaffServiceImpl{StaffRepository: staffRepo}
}

// Create implements staff.StaffService.
func (s *StaffServiceImpl) Create(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return staff.StaffResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var hourlyRate *decimal.Decimal
	if req.HourlyRate != nil {
		rate, err := decimal.NewFromString(*req.HourlyRate)
		if err != nil {
			return staff.StaffResponse{}, fmt.Errorf("invalid hourly rate: %w", err)
		}
		hourlyRate = &rate
	}

	commission := decimal.Zero
	if req.CommissionPercentage != "" {
		commission, err = decimal.NewFromString(req.CommissionPercentage)
		if err != nil {
			return staff.StaffResponse{}, fmt.Errorf("invalid commission percentage: %w", err)
		}
	}

	shiftsReq := staff.UpdateShiftsRequest{Shifts: req.Shifts}

	created, err := s.StaffRepository.Create(ctx, staff.Staff{
		FullName:             req.FullName,
		Email:                req.Email,
		PasswordHash:         string(hash),
		BranchID:             req.BranchID,
		Role:                 staff.Role(req.Role),
		HourlyRate:           hourlyRate,
		CommissionPercentage: commission,
		WeekOffDay:           time.Weekday(req.WeekOffDay),
		Shifts:               shiftsReq.ToShifts(),
	})
	if err != nil {
		return staff.StaffResponse{}, err
	}

	return staff.ToResponse(created), nil
}

// GetByID implements staff.StaffService.
func (s *StaffServiceImpl) GetByID(ctx context.Context, id string) (staff.StaffResponse, error) {
	member, err := s.StaffRepository.GetByID(ctx, id)
	if err != nil {
		return staff.StaffResponse{}, err
	}
	return staff.ToResponse(member), nil
}

// ListByBranch implements staff.StaffService.
func (s *StaffServiceImpl) ListByBranch(ctx context.Context, branchID string) ([]staff.StaffResponse, error) {
	members, err := s.StaffRepository.ListByBranch(ctx, branchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list branch staff: %w", err)
	}

	responses := make([]staff.StaffResponse, 0, len(members))
	for _, m := range members {
		responses = append(responses, staff.ToResponse(m))
	}
	return responses, nil
}

// UpdateShifts implements staff.StaffService.
func (s *StaffServiceImpl) UpdateShifts(ctx context.Context, req staff.UpdateShiftsRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	if err := s.StaffRepository.UpdateShifts(ctx, req.ID, req.ToShifts()); err != nil {
		return staff.StaffResponse{}, err
	}

	member, err := s.StaffRepository.GetByID(ctx, req.ID)
	if err != nil {
		return staff.StaffResponse{}, err
	}
	return staff.ToResponse(member), nil
}
