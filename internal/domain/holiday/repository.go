package holiday

import (
	"context"
	"time"
)

// HolidayRepository defines data access methods for the holiday calendar.
type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)

	ListForMonth(ctx context.Context, year int, month time.Month) ([]Holiday, error)

	Delete(ctx context.Context, id string) error
}
