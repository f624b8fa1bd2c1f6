package scheduling

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fitcore/gym-backend-go/internal/domain/attendance"
	"github.com/fitcore/gym-backend-go/internal/domain/booking"
	"github.com/fitcore/gym-backend-go/internal/domain/membership"
	"github.com/fitcore/gym-backend-go/internal/domain/staff"
	"github.com/fitcore/gym-backend-go/internal/pkg/database"
	"github.com/fitcore/gym-backend-go/internal/pkg/email"
	"github.com/fitcore/gym-backend-go/internal/repository/postgresql"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
)

type SchedulingServiceImpl struct {
	db *database.DB
	booking.BookingRepository
	staff.StaffRepository
	membership.SubscriptionRepository
	attendanceRepo attendance.AttendanceRepository
	emailService   email.EmailService
}

func NewSchedulingService(
	db *database.DB,
	bookingRepo booking.BookingRepository,
	staffRepo staff.StaffRepository,
	subscriptionRepo membership.SubscriptionRepository,
	attendanceRepo attendance.AttendanceRepository,
	emailService email.EmailService,
) booking.BookingService {
	return &SchedulingServiceImpl{
		db:                     db,
		BookingRepository:      bookingRepo,
		StaffRepository:        staffRepo,
		SubscriptionRepository: subscriptionRepo,
		attendanceRepo:         attendanceRepo,
		emailService:           emailService,
	}
}

// memberClaims is the authenticated member's identity from the JWT context.
type memberClaims struct {
	ID       string
	BranchID string
	Email    string
	FullName string
}

func getMemberClaims(ctx context.Context) (memberClaims, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return memberClaims{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	memberID, ok := claims["user_id"].(string)
	if !ok || memberID == "" {
		return memberClaims{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	mc := memberClaims{ID: memberID}
	mc.BranchID, _ = claims["branch_id"].(string)
	mc.Email, _ = claims["email"].(string)
	mc.FullName, _ = claims["full_name"].(string)

	return mc, nil
}

// ComputeAvailableSlots implements booking.BookingService.
func (s *SchedulingServiceImpl) ComputeAvailableSlots(ctx context.Context, query booking.AvailabilityQuery) ([]booking.SlotAvailability, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	member, err := getMemberClaims(ctx)
	if err != nil {
		return nil, err
	}

	trainer, err := s.StaffRepository.GetByID(ctx, query.TrainerID)
	if err != nil {
		return nil, err
	}
	if trainer.Role != staff.RoleTrainer {
		return nil, staff.ErrNotATrainer
	}

	date, _ := time.Parse("2006-01-02", query.Date)
	sessionType := booking.SessionType(query.Type)

	bookings, err := s.BookingRepository.ListForTrainerDate(ctx, trainer.ID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list trainer bookings: %w", err)
	}

	// Display phase uses the member's own GROUP plan capacity when they hold
	// one; the commit phase re-resolves it authoritatively.
	capacity := membership.DefaultGroupCapacity
	if sessionType == booking.SessionGroup {
		sub, err := s.SubscriptionRepository.FindActiveByMemberAndType(ctx, member.ID, booking.SessionGroup, date)
		if err == nil && sub.Plan != nil {
			capacity = sub.Plan.Capacity()
		} else if err != nil && !errors.Is(err, membership.ErrSubscriptionNotFound) {
			return nil, fmt.Errorf("failed to resolve group capacity: %w", err)
		}
	}

	return ComputeAvailableSlots(AvailabilityInput{
		Trainer:       trainer,
		MemberID:      member.ID,
		Type:          sessionType,
		Bookings:      bookings,
		GroupCapacity: capacity,
	}), nil
}

// Create implements booking.BookingService. The commit path re-reads the slot
// under an advisory lock so two concurrent bookers serialize at the storage
// boundary instead of trusting their stale availability snapshots.
func (s *SchedulingServiceImpl) Create(ctx context.Context, req booking.CreateBookingRequest) (booking.BookingResponse, error) {
	if err := req.Validate(); err != nil {
		return booking.BookingResponse{}, err
	}

	member, err := getMemberClaims(ctx)
	if err != nil {
		return booking.BookingResponse{}, err
	}

	trainer, err := s.StaffRepository.GetByID(ctx, req.TrainerID)
	if err != nil {
		return booking.BookingResponse{}, err
	}
	if trainer.Role != staff.RoleTrainer {
		return booking.BookingResponse{}, staff.ErrNotATrainer
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	sessionType := booking.SessionType(req.Type)

	var created booking.Booking
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		if err := s.BookingRepository.LockSlot(txCtx, trainer.ID, date, req.TimeSlot); err != nil {
			return fmt.Errorf("failed to lock slot: %w", err)
		}

		existing, err := s.BookingRepository.ListForTrainerSlot(txCtx, trainer.ID, date, req.TimeSlot)
		if err != nil {
			return fmt.Errorf("failed to re-read slot bookings: %w", err)
		}

		var sub *membership.Subscription
		found, err := s.SubscriptionRepository.FindActiveByMemberAndType(txCtx, member.ID, sessionType, date)
		switch {
		case err == nil:
			sub = &found
		case !errors.Is(err, membership.ErrSubscriptionNotFound):
			return fmt.Errorf("failed to resolve subscription: %w", err)
		}

		used := 0
		if sub != nil && sub.Plan != nil && sub.Plan.MaxSessions != nil {
			used, err = s.BookingRepository.CountMemberBookings(txCtx, member.ID, sessionType, sub.StartDate, sub.EndDate)
			if err != nil {
				return fmt.Errorf("failed to count used sessions: %w", err)
			}
		}

		if err := validateCommit(CommitInput{
			Existing: existing,
			MemberID: member.ID,
			Type:     sessionType,
			Sub:      sub,
			Used:     used,
		}); err != nil {
			return err
		}

		created, err = s.BookingRepository.Create(txCtx, booking.Booking{
			MemberID:  member.ID,
			TrainerID: trainer.ID,
			Type:      sessionType,
			Date:      date,
			TimeSlot:  req.TimeSlot,
			BranchID:  member.BranchID,
			Status:    booking.StatusBooked,
		})
		if err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return booking.BookingResponse{}, err
	}

	// Confirmation email is best effort; the booking already committed.
	if member.Email != "" {
		if err := s.emailService.SendBookingConfirmation(
			member.Email, member.FullName, trainer.FullName,
			string(sessionType), req.Date, req.TimeSlot,
		); err != nil {
			slog.Error("Failed to send booking confirmation", "booking_id", created.ID, "error", err)
		}
	}

	return booking.ToResponse(created), nil
}

// Complete implements booking.BookingService. Triggered by a class-completion
// scan; records the member's attendance alongside the status change.
func (s *SchedulingServiceImpl) Complete(ctx context.Context, id string) (booking.BookingResponse, error) {
	b, err := s.BookingRepository.GetByID(ctx, id)
	if err != nil {
		return booking.BookingResponse{}, err
	}
	if b.Status != booking.StatusBooked {
		return booking.BookingResponse{}, booking.ErrBookingAlreadyFinal
	}

	if err := s.BookingRepository.UpdateStatus(ctx, id, booking.StatusCompleted); err != nil {
		return booking.BookingResponse{}, fmt.Errorf("failed to complete booking: %w", err)
	}

	slot, ok := booking.SlotByLabel(b.TimeSlot)
	if ok {
		end := slot.StartMinutes + 60
		_, err = s.attendanceRepo.Create(ctx, attendance.Attendance{
			UserID:   b.MemberID,
			Date:     b.Date,
			TimeIn:   slot.StartMinutes,
			TimeOut:  &end,
			BranchID: b.BranchID,
			Type:     attendance.TypeMember,
		})
		if err != nil {
			slog.Error("Failed to record member attendance for completed booking", "booking_id", id, "error", err)
		}
	}

	b.Status = booking.StatusCompleted
	return booking.ToResponse(b), nil
}

// Cancel implements booking.BookingService.
func (s *SchedulingServiceImpl) Cancel(ctx context.Context, id string) (booking.BookingResponse, error) {
	b, err := s.BookingRepository.GetByID(ctx, id)
	if err != nil {
		return booking.BookingResponse{}, err
	}
	if b.Status != booking.StatusBooked {
		return booking.BookingResponse{}, booking.ErrBookingAlreadyFinal
	}

	if err := s.BookingRepository.UpdateStatus(ctx, id, booking.StatusCancelled); err != nil {
		return booking.BookingResponse{}, fmt.Errorf("failed to cancel booking: %w", err)
	}

	b.Status = booking.StatusCancelled
	return booking.ToResponse(b), nil
}

// ListMyBookings implements booking.BookingService.
func (s *SchedulingServiceImpl) ListMyBookings(ctx context.Context) ([]booking.BookingResponse, error) {
	member, err := getMemberClaims(ctx)
	if err != nil {
		return nil, err
	}

	bookings, err := s.BookingRepository.ListForMember(ctx, member.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list member bookings: %w", err)
	}

	responses := make([]booking.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, booking.ToResponse(b))
	}
	return responses, nil
}
