package booking

import (
	"context"
	"time"

	domain "github.com/junsalon/salon-api/internal/domain/booking"
)

type GetTimeAvailability struct {
	day *GetDayAvailability
}

func NewGetTimeAvailability(day *GetDayAvailability) *GetTimeAvailability {
	return &GetTimeAvailability{day: day}
}

// Execute returns only the free slots for the date, same ordering as the
// full day view.
func (uc *GetTimeAvailability) Execute(
	ctx context.Context,
	date time.Time,
) ([]domain.TimeAvailability, error) {

	day, err := uc.day.Execute(ctx, date)
	if err != nil {
		return nil, err
	}

	out := make([]domain.TimeAvailability, 0, len(day))
	for _, entry := range day {
		if !entry.Booked {
			out = append(out, domain.TimeAvailability{Slot: entry.Slot})
		}
	}

	return out, nil
}
