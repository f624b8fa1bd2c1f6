package scheduling

import (
	"github.com/fitcore/gym-backend-go/internal/domain/booking"
	"github.com/fitcore/gym-backend-go/internal/domain/membership"
	"github.com/fitcore/gym-backend-go/internal/domain/staff"
)

// AvailabilityInput is everything the grid computation needs, already loaded.
// Keeping the calculator a pure function of explicit inputs makes the display
// phase and the commit phase share one rule set.
type AvailabilityInput struct {
	Trainer       staff.Staff
	MemberID      string
	Type          booking.SessionType
	Bookings      []booking.Booking // the trainer's bookings for the day, any status
	GroupCapacity int
}

// ComputeAvailableSlots renders the fixed daily grid for one trainer and day.
// Slots whose start does not fall inside any shift window are omitted
// entirely, distinguishing "not on duty" from "booked out". The rest are
// annotated available or unavailable with a display reason, in chronological
// order.
func ComputeAvailableSlots(in AvailabilityInput) []booking.SlotAvailability {
	out := make([]booking.SlotAvailability, 0, booking.SlotCount)

	for _, slot := range booking.Slots() {
		onDuty := false
		for _, sh := range in.Trainer.Shifts {
			if sh.Contains(slot.StartMinutes) {
				onDuty = true
				break
			}
		}
		if !onDuty {
			continue
		}

		out = append(out, annotateSlot(slot, in))
	}

	return out
}

func annotateSlot(slot booking.Slot, in AvailabilityInput) booking.SlotAvailability {
	var (
		hasPT        bool
		hasGroup     bool
		groupCount   int
		memberJoined bool
	)
	for _, b := range in.Bookings {
		if !b.Counts() || b.TimeSlot != slot.Label {
			continue
		}
		switch b.Type {
		case booking.SessionPT:
			hasPT = true
		case booking.SessionGroup:
			hasGroup = true
			groupCount++
		}
		if b.MemberID == in.MemberID {
			memberJoined = true
		}
	}

	unavailable := func(reason string) booking.SlotAvailability {
		return booking.SlotAvailability{Slot: slot.Label, Available: false, Reason: &reason}
	}

	// PT bookings are exclusive: they block the slot for everyone.
	if hasPT {
		return unavailable(booking.ReasonPrivateSession)
	}
	// A PT session cannot be scheduled alongside a running group class.
	if in.Type == booking.SessionPT && hasGroup {
		return unavailable(booking.ReasonGroupClass)
	}
	if memberJoined {
		return unavailable(booking.ReasonAlreadyJoined)
	}
	if in.Type == booking.SessionGroup {
		count, capacity := groupCount, in.GroupCapacity
		av := booking.SlotAvailability{
			Slot:      slot.Label,
			Available: count < capacity,
			Count:     &count,
			Capacity:  &capacity,
		}
		if !av.Available {
			reason := booking.ReasonClassFull
			av.Reason = &reason
		}
		return av
	}

	return booking.SlotAvailability{Slot: slot.Label, Available: true}
}

// CommitInput is the state re-read inside the commit transaction, after the
// slot lock is held. Sub is nil when no ACTIVE subscription matches the
// session type on the booking date; Used is the member's counted bookings
// inside that subscription's validity window.
type CommitInput struct {
	Existing []booking.Booking
	MemberID string
	Type     booking.SessionType
	Sub      *membership.Subscription
	Used     int
}

// validateCommit is the authoritative acceptance check that closes the window
// between slot display and submission. Rejections are ordered slot-first: a
// conflict on the re-read slot reads as "taken, refresh" regardless of the
// member's subscription state, and plan-level failures only surface once the
// slot itself is joinable.
func validateCommit(in CommitInput) error {
	groupCount := 0
	for _, b := range in.Existing {
		if !b.Counts() {
			continue
		}
		if b.Type == booking.SessionPT {
			return booking.ErrSlotCollision
		}
		if b.Type == booking.SessionGroup {
			if in.Type == booking.SessionPT {
				return booking.ErrSlotCollision
			}
			groupCount++
		}
		if b.MemberID == in.MemberID {
			return booking.ErrAlreadyJoined
		}
	}

	if in.Sub == nil {
		return booking.ErrNoEligibleSubscription
	}

	capacity := membership.DefaultGroupCapacity
	if in.Sub.Plan != nil {
		capacity = in.Sub.Plan.Capacity()
	}
	if in.Type == booking.SessionGroup && groupCount >= capacity {
		return booking.ErrCapacityExceeded
	}

	if in.Sub.Plan != nil && in.Sub.Plan.MaxSessions != nil && in.Used >= *in.Sub.Plan.MaxSessions {
		return booking.ErrQuotaExhausted
	}

	return nil
}
