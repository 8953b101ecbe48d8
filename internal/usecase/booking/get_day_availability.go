package booking

import (
	"context"
	"time"

	domain "github.com/junsalon/salon-api/internal/domain/booking"
	"github.com/junsalon/salon-api/internal/httperr"
	"github.com/junsalon/salon-api/internal/metrics"
	"github.com/junsalon/salon-api/internal/slots"
)

type GetDayAvailability struct {
	repo  domain.Repository
	slots *slots.Table
}

func NewGetDayAvailability(
	repo domain.Repository,
	table *slots.Table,
) *GetDayAvailability {
	return &GetDayAvailability{
		repo:  repo,
		slots: table,
	}
}

// Execute returns one entry per configured slot, ascending by start time,
// marked booked when a non-cancelled record exists for that (date, slot).
func (uc *GetDayAvailability) Execute(
	ctx context.Context,
	date time.Time,
) ([]domain.DayAvailability, error) {

	if date.IsZero() {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}

	recs, err := uc.repo.ListDayBookings(ctx, date)
	if err != nil {
		return nil, err
	}

	booked := make(map[uint]bool, len(recs))
	for _, rec := range recs {
		booked[rec.TimeSlotID] = true
	}

	all := uc.slots.All()
	out := make([]domain.DayAvailability, 0, len(all))
	for _, s := range all {
		out = append(out, domain.DayAvailability{
			Slot:   s,
			Booked: booked[s.ID],
		})
	}

	metrics.AvailabilityQueries.Inc()

	return out, nil
}
