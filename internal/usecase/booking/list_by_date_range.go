package booking

import (
	"context"
	"time"

	domain "github.com/junsalon/salon-api/internal/domain/booking"
	"github.com/junsalon/salon-api/internal/httperr"
	"github.com/junsalon/salon-api/internal/models"
)

type ListByDateRange struct {
	repo domain.Repository
}

func NewListByDateRange(repo domain.Repository) *ListByDateRange {
	return &ListByDateRange{repo: repo}
}

// Execute returns active bookings with contacts joined for the inclusive
// [start, end] range, ascending by date. Used by the operator calendar.
func (uc *ListByDateRange) Execute(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.BookingRecord, error) {

	if start.IsZero() || end.IsZero() || end.Before(start) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}

	return uc.repo.ListBookingsByRange(ctx, start, end)
}
