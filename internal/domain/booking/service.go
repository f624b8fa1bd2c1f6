package booking

import "context"

// BookingService defines business logic for slot availability and booking lifecycle.
type BookingService interface {
	// ComputeAvailableSlots renders the grid for a trainer/date/type, annotated
	// for the authenticated member. Slots outside shift windows are omitted.
	ComputeAvailableSlots(ctx context.Context, query AvailabilityQuery) ([]SlotAvailability, error)

	// Create re-validates the slot at commit time (collision, capacity,
	// subscription eligibility, quota) and persists a BOOKED record.
	Create(ctx context.Context, req CreateBookingRequest) (BookingResponse, error)

	// Complete marks a booking COMPLETED on a class-completion scan.
	Complete(ctx context.Context, id string) (BookingResponse, error)

	// Cancel moves a booking to its terminal CANCELLED state, removing it from
	// all collision and quota counting.
	Cancel(ctx context.Context, id string) (BookingResponse, error)

	ListMyBookings(ctx context.Context) ([]BookingResponse, error)
}
