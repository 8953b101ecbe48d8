package booking

import (
	"context"

	"github.com/junsalon/salon-api/internal/audit"
	domain "github.com/junsalon/salon-api/internal/domain/booking"
	"github.com/junsalon/salon-api/internal/metrics"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute marks the booking cancelled and reports whether exactly one
// active record matched. Cancelling an unknown or already-cancelled id
// returns false with no rows changed.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	bookingID uint,
) (bool, error) {

	ok, err := uc.repo.CancelBooking(ctx, bookingID)
	if err != nil {
		return false, err
	}

	if ok {
		metrics.BookingsCancelled.Inc()

		uc.audit.Dispatch(audit.Event{
			Action:   "booking_cancelled",
			Entity:   "booking",
			EntityID: &bookingID,
		})
	}

	return ok, nil
}
