package holiday

import "context"

// HolidayService defines business logic for the holiday calendar.
type HolidayService interface {
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	ListForMonth(ctx context.Context, year int, month int) ([]HolidayResponse, error)
	Delete(ctx context.Context, id string) error
}
