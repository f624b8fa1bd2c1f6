package scheduling

import (
	"testing"

	"github.com/fitcore/gym-backend-go/internal/domain/booking"
	"github.com/fitcore/gym-backend-go/internal/domain/membership"
	"github.com/fitcore/gym-backend-go/internal/domain/staff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trainerWithShifts(shifts ...staff.Shift) staff.Staff {
	return staff.Staff{
		ID:       "trainer-1",
		FullName: "Coach",
		Role:     staff.RoleTrainer,
		Shifts:   shifts,
	}
}

func mustShift(t *testing.T, start, end string) staff.Shift {
	t.Helper()
	s, err := staff.ParseClock(start)
	require.NoError(t, err)
	e, err := staff.ParseClock(end)
	require.NoError(t, err)
	return staff.Shift{Start: s, End: e}
}

func slotLabels(slots []booking.SlotAvailability) []string {
	labels := make([]string, 0, len(slots))
	for _, s := range slots {
		labels = append(labels, s.Slot)
	}
	return labels
}

func groupBooking(memberID, slot string) booking.Booking {
	return booking.Booking{
		MemberID:  memberID,
		TrainerID: "trainer-1",
		Type:      booking.SessionGroup,
		TimeSlot:  slot,
		Status:    booking.StatusBooked,
	}
}

func ptBooking(memberID, slot string) booking.Booking {
	b := groupBooking(memberID, slot)
	b.Type = booking.SessionPT
	return b
}

func TestComputeAvailableSlots_ShiftContainment(t *testing.T) {
	t.Run("slots outside every shift window are omitted", func(t *testing.T) {
		got := ComputeAvailableSlots(AvailabilityInput{
			Trainer:       trainerWithShifts(mustShift(t, "09:00", "13:00")),
			MemberID:      "member-1",
			Type:          booking.SessionPT,
			GroupCapacity: 15,
		})

		assert.Equal(t, []string{"09:00 AM", "10:00 AM", "11:00 AM", "12:00 PM"}, slotLabels(got))
		for _, s := range got {
			assert.True(t, s.Available, "slot %s", s.Slot)
			assert.Nil(t, s.Reason)
		}
	})

	t.Run("shift end is exclusive", func(t *testing.T) {
		got := ComputeAvailableSlots(AvailabilityInput{
			Trainer:       trainerWithShifts(mustShift(t, "06:00", "07:00")),
			MemberID:      "member-1",
			Type:          booking.SessionPT,
			GroupCapacity: 15,
		})

		assert.Equal(t, []string{"06:00 AM"}, slotLabels(got))
	})

	t.Run("split shifts leave a gap in the grid", func(t *testing.T) {
		got := ComputeAvailableSlots(AvailabilityInput{
			Trainer: trainerWithShifts(
				mustShift(t, "06:00", "08:00"),
				mustShift(t, "17:00", "19:00"),
			),
			MemberID:      "member-1",
			Type:          booking.SessionGroup,
			GroupCapacity: 15,
		})

		assert.Equal(t, []string{"06:00 AM", "07:00 AM", "05:00 PM", "06:00 PM"}, slotLabels(got))
	})

	t.Run("no shifts yields an empty grid", func(t *testing.T) {
		got := ComputeAvailableSlots(AvailabilityInput{
			Trainer:       trainerWithShifts(),
			MemberID:      "member-1",
			Type:          booking.SessionPT,
			GroupCapacity: 15,
		})

		assert.Empty(t, got)
	})
}

func TestComputeAvailableSlots_Exclusivity(t *testing.T) {
	trainer := trainerWithShifts(mustShift(t, "09:00", "12:00"))

	t.Run("a PT booking blocks the slot for everyone", func(t *testing.T) {
		for _, requestType := range []booking.SessionType{booking.SessionPT, booking.SessionGroup} {
			got := ComputeAvailableSlots(AvailabilityInput{
				Trainer:       trainer,
				MemberID:      "member-1",
				Type:          requestType,
				Bookings:      []booking.Booking{ptBooking("member-2", "10:00 AM")},
				GroupCapacity: 15,
			})

			require.Len(t, got, 3)
			blocked := got[1]
			assert.Equal(t, "10:00 AM", blocked.Slot)
			assert.False(t, blocked.Available)
			require.NotNil(t, blocked.Reason)
			assert.Equal(t, booking.ReasonPrivateSession, *blocked.Reason)
		}
	})

	t.Run("a group class blocks PT but not more group joins", func(t *testing.T) {
		bookings := []booking.Booking{groupBooking("member-2", "09:00 AM")}

		forPT := ComputeAvailableSlots(AvailabilityInput{
			Trainer:       trainer,
			MemberID:      "member-1",
			Type:          booking.SessionPT,
			Bookings:      bookings,
			GroupCapacity: 15,
		})
		require.NotNil(t, forPT[0].Reason)
		assert.Equal(t, booking.ReasonGroupClass, *forPT[0].Reason)
		assert.False(t, forPT[0].Available)

		forGroup := ComputeAvailableSlots(AvailabilityInput{
			Trainer:       trainer,
			MemberID:      "member-1",
			Type:          booking.SessionGroup,
			Bookings:      bookings,
			GroupCapacity: 15,
		})
		assert.True(t, forGroup[0].Available)
		require.NotNil(t, forGroup[0].Count)
		assert.Equal(t, 1, *forGroup[0].Count)
		require.NotNil(t, forGroup[0].Capacity)
		assert.Equal(t, 15, *forGroup[0].Capacity)
	})

	t.Run("cancelled bookings do not block", func(t *testing.T) {
		cancelled := ptBooking("member-2", "09:00 AM")
		cancelled.Status = booking.StatusCancelled

		got := ComputeAvailableSlots(AvailabilityInput{
			Trainer:       trainer,
			MemberID:      "member-1",
			Type:          booking.SessionPT,
			Bookings:      []booking.Booking{cancelled},
			GroupCapacity: 15,
		})

		assert.True(t, got[0].Available)
	})

	t.Run("completed bookings still count", func(t *testing.T) {
		completed := groupBooking("member-2", "09:00 AM")
		completed.Status = booking.StatusCompleted

		got := ComputeAvailableSlots(AvailabilityInput{
			Trainer:       trainer,
			MemberID:      "member-1",
			Type:          booking.SessionPT,
			Bookings:      []booking.Booking{completed},
			GroupCapacity: 15,
		})

		assert.False(t, got[0].Available)
		require.NotNil(t, got[0].Reason)
		assert.Equal(t, booking.ReasonGroupClass, *got[0].Reason)
	})
}

func TestComputeAvailableSlots_AlreadyJoined(t *testing.T) {
	trainer := trainerWithShifts(mustShift(t, "09:00", "11:00"))

	got := ComputeAvailableSlots(AvailabilityInput{
		Trainer:       trainer,
		MemberID:      "member-1",
		Type:          booking.SessionGroup,
		Bookings:      []booking.Booking{groupBooking("member-1", "09:00 AM")},
		GroupCapacity: 15,
	})

	require.Len(t, got, 2)
	assert.False(t, got[0].Available)
	require.NotNil(t, got[0].Reason)
	assert.Equal(t, booking.ReasonAlreadyJoined, *got[0].Reason)
	assert.True(t, got[1].Available)
}

func TestComputeAvailableSlots_Capacity(t *testing.T) {
	trainer := trainerWithShifts(mustShift(t, "09:00", "10:00"))

	full := make([]booking.Booking, 0, 3)
	for _, m := range []string{"m1", "m2", "m3"} {
		full = append(full, groupBooking(m, "09:00 AM"))
	}

	got := ComputeAvailableSlots(AvailabilityInput{
		Trainer:       trainer,
		MemberID:      "member-1",
		Type:          booking.SessionGroup,
		Bookings:      full,
		GroupCapacity: 3,
	})

	require.Len(t, got, 1)
	assert.False(t, got[0].Available)
	require.NotNil(t, got[0].Reason)
	assert.Equal(t, booking.ReasonClassFull, *got[0].Reason)
	require.NotNil(t, got[0].Count)
	assert.Equal(t, 3, *got[0].Count)
	require.NotNil(t, got[0].Capacity)
	assert.Equal(t, 3, *got[0].Capacity)
}

func intPtr(n int) *int { return &n }

func activeSub(t booking.SessionType, maxSessions, groupCapacity *int) *membership.Subscription {
	return &membership.Subscription{
		Status: membership.StatusActive,
		Plan: &membership.Plan{
			Type:          t,
			MaxSessions:   maxSessions,
			GroupCapacity: groupCapacity,
		},
	}
}

func TestValidateCommit(t *testing.T) {
	tests := []struct {
		name     string
		existing []booking.Booking
		request  booking.SessionType
		sub      *membership.Subscription
		used     int
		wantErr  error
	}{
		{
			name:    "empty slot accepts PT",
			request: booking.SessionPT,
			sub:     activeSub(booking.SessionPT, nil, nil),
		},
		{
			name:    "empty slot accepts GROUP",
			request: booking.SessionGroup,
			sub:     activeSub(booking.SessionGroup, nil, nil),
		},
		{
			name:     "PT present rejects PT",
			existing: []booking.Booking{ptBooking("m1", "09:00 AM")},
			request:  booking.SessionPT,
			sub:      activeSub(booking.SessionPT, nil, nil),
			wantErr:  booking.ErrSlotCollision,
		},
		{
			name:     "PT present rejects GROUP",
			existing: []booking.Booking{ptBooking("m1", "09:00 AM")},
			request:  booking.SessionGroup,
			sub:      activeSub(booking.SessionGroup, nil, nil),
			wantErr:  booking.ErrSlotCollision,
		},
		{
			name:     "GROUP present rejects PT",
			existing: []booking.Booking{groupBooking("m1", "09:00 AM")},
			request:  booking.SessionPT,
			sub:      activeSub(booking.SessionPT, nil, nil),
			wantErr:  booking.ErrSlotCollision,
		},
		{
			name: "GROUP below capacity accepts GROUP",
			existing: []booking.Booking{
				groupBooking("m1", "09:00 AM"),
				groupBooking("m2", "09:00 AM"),
			},
			request: booking.SessionGroup,
			sub:     activeSub(booking.SessionGroup, nil, intPtr(3)),
		},
		{
			name: "GROUP at plan capacity rejects GROUP",
			existing: []booking.Booking{
				groupBooking("m1", "09:00 AM"),
				groupBooking("m2", "09:00 AM"),
				groupBooking("m3", "09:00 AM"),
			},
			request: booking.SessionGroup,
			sub:     activeSub(booking.SessionGroup, nil, intPtr(3)),
			wantErr: booking.ErrCapacityExceeded,
		},
		{
			name: "cancelled bookings are ignored",
			existing: []booking.Booking{
				{Type: booking.SessionPT, TimeSlot: "09:00 AM", Status: booking.StatusCancelled},
			},
			request: booking.SessionPT,
			sub:     activeSub(booking.SessionPT, nil, nil),
		},
		{
			name:     "member already in the class is rejected",
			existing: []booking.Booking{groupBooking("member-1", "09:00 AM")},
			request:  booking.SessionGroup,
			sub:      activeSub(booking.SessionGroup, nil, nil),
			wantErr:  booking.ErrAlreadyJoined,
		},
		{
			name:    "no active subscription rejects an open slot",
			request: booking.SessionGroup,
			wantErr: booking.ErrNoEligibleSubscription,
		},
		{
			name:     "occupied slot rejects as collision even without a subscription",
			existing: []booking.Booking{ptBooking("m1", "09:00 AM")},
			request:  booking.SessionGroup,
			wantErr:  booking.ErrSlotCollision,
		},
		{
			name:    "quota exhausted at the session limit",
			request: booking.SessionPT,
			sub:     activeSub(booking.SessionPT, intPtr(10), nil),
			used:    10,
			wantErr: booking.ErrQuotaExhausted,
		},
		{
			name:    "last remaining session is accepted",
			request: booking.SessionPT,
			sub:     activeSub(booking.SessionPT, intPtr(10), nil),
			used:    9,
		},
		{
			name:    "unlimited plan ignores usage",
			request: booking.SessionPT,
			sub:     activeSub(booking.SessionPT, nil, nil),
			used:    100,
		},
		{
			name: "full class rejects as capacity before quota",
			existing: []booking.Booking{
				groupBooking("m1", "09:00 AM"),
				groupBooking("m2", "09:00 AM"),
				groupBooking("m3", "09:00 AM"),
			},
			request: booking.SessionGroup,
			sub:     activeSub(booking.SessionGroup, intPtr(10), intPtr(3)),
			used:    10,
			wantErr: booking.ErrCapacityExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCommit(CommitInput{
				Existing: tt.existing,
				MemberID: "member-1",
				Type:     tt.request,
				Sub:      tt.sub,
				Used:     tt.used,
			})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
