package http

import (
	"encoding/json"
	"net/http"

	"github.com/fitcore/gym-backend-go/internal/domain/booking"
	"github.com/fitcore/gym-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type BookingHandler interface {
	Availability(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	ListMy(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
}

type bookingHandlerImpl struct {
	bookingService booking.BookingService
}

func NewBookingHandler(bookingService booking.BookingService) BookingHandler {
	return &bookingHandlerImpl{bookingService: bookingService}
}

// Availability implements BookingHandler. Renders the trainer's slot grid for
// a date, annotated for the requesting member.
func (h *bookingHandlerImpl) Availability(w http.ResponseWriter, r *http.Request) {
	query := booking.AvailabilityQuery{
		TrainerID: r.URL.Query().Get("trainer_id"),
		Date:      r.URL.Query().Get("date"),
		Type:      r.URL.Query().Get("type"),
	}

	slots, err := h.bookingService.ComputeAvailableSlots(r.Context(), query)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, slots)
}

// Create implements BookingHandler.
func (h *bookingHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req booking.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.bookingService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Booking confirmed", result)
}

// ListMy implements BookingHandler.
func (h *bookingHandlerImpl) ListMy(w http.ResponseWriter, r *http.Request) {
	result, err := h.bookingService.ListMyBookings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Cancel implements BookingHandler.
func (h *bookingHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.bookingService.Cancel(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Booking cancelled", result)
}

// Complete implements BookingHandler. Called by the front desk when the
// member checks in for their session.
func (h *bookingHandlerImpl) Complete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.bookingService.Complete(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Session completed", result)
}
