package booking

import (
	"context"

	domain "github.com/junsalon/salon-api/internal/domain/booking"
	"github.com/junsalon/salon-api/internal/models"
	"github.com/junsalon/salon-api/internal/timezone"
)

type ListByContact struct {
	repo domain.Repository
	tz   string
}

func NewListByContact(repo domain.Repository, tz string) *ListByContact {
	return &ListByContact{repo: repo, tz: tz}
}

// Execute returns the contact's upcoming active bookings: date strictly
// after now, cancelled excluded, ascending by date then slot.
func (uc *ListByContact) Execute(
	ctx context.Context,
	contactID uint,
) ([]models.BookingRecord, error) {

	now := timezone.NowIn(uc.tz)
	return uc.repo.ListBookingsByContact(ctx, contactID, now)
}
