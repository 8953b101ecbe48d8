package booking

import (
	"context"

	domain "github.com/junsalon/salon-api/internal/domain/booking"
	"github.com/junsalon/salon-api/internal/models"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

// Execute fetches one booking with its contact joined. Unknown ids come
// back as the booking_not_found business error.
func (uc *GetAppointment) Execute(
	ctx context.Context,
	bookingID uint,
) (*models.BookingRecord, error) {
	return uc.repo.GetBookingByID(ctx, bookingID)
}
