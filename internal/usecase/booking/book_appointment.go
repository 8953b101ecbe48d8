package booking

import (
	"context"
	"time"

	"github.com/junsalon/salon-api/internal/audit"
	domain "github.com/junsalon/salon-api/internal/domain/booking"
	"github.com/junsalon/salon-api/internal/httperr"
	"github.com/junsalon/salon-api/internal/metrics"
	"github.com/junsalon/salon-api/internal/models"
	"github.com/junsalon/salon-api/internal/slots"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	ContactID   uint
	TimeSlotID  uint
	Date        time.Time
	Description string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo  domain.Repository
	slots *slots.Table
	audit *audit.Dispatcher
}

func NewBookAppointment(
	repo domain.Repository,
	table *slots.Table,
	audit *audit.Dispatcher,
) *BookAppointment {
	return &BookAppointment{
		repo:  repo,
		slots: table,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.BookingRecord, error) {

	if in.Date.IsZero() {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidDate)
	}

	if !uc.slots.Has(in.TimeSlotID) {
		return nil, httperr.ErrBusiness(httperr.CodeSlotUnknown)
	}

	// Fast pre-check so most conflicts are answered without touching the
	// insert path. The store's unique index still backs the invariant when
	// two callers pass this check at once.
	free, err := uc.repo.IsSlotAvailable(ctx, in.Date, in.TimeSlotID)
	if err != nil {
		return nil, err
	}
	if !free {
		uc.reportConflict(in)
		return nil, httperr.ErrBusiness(httperr.CodeSlotTaken)
	}

	rec := &models.BookingRecord{
		ContactID:   in.ContactID,
		TimeSlotID:  in.TimeSlotID,
		Date:        in.Date,
		Description: in.Description,
	}

	if err := uc.repo.CreateBooking(ctx, rec); err != nil {
		if httperr.IsBusiness(err, httperr.CodeSlotTaken) {
			uc.reportConflict(in)
		}
		return nil, err
	}

	metrics.BookingsCreated.Inc()

	uc.audit.Dispatch(audit.Event{
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &rec.ID,
	})

	return rec, nil
}

func (uc *BookAppointment) reportConflict(in BookAppointmentInput) {
	metrics.BookingConflicts.Inc()

	uc.audit.Dispatch(audit.Event{
		Action: "booking_conflict",
		Entity: "booking",
		Metadata: map[string]any{
			"date":         in.Date.Format("2006-01-02"),
			"time_slot_id": in.TimeSlotID,
		},
	})
}
