package dto

import (
	"time"

	"github.com/junsalon/salon-api/internal/models"
)

// BookingDTO is the read-side projection of a booking joined with its
// contact, the shape the calendar and detail views render.
type BookingDTO struct {
	ID          uint      `json:"id"`
	TimeSlotID  uint      `json:"time_slot_id"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	CreatedDate time.Time `json:"created_date"`
	Cancelled   bool      `json:"cancelled"`

	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email"`
}

func FromBookingRecord(rec *models.BookingRecord) BookingDTO {
	return BookingDTO{
		ID:          rec.ID,
		TimeSlotID:  rec.TimeSlotID,
		Date:        rec.Date.Format("2006-01-02"),
		Description: rec.Description,
		CreatedDate: rec.CreatedDate,
		Cancelled:   rec.Cancelled,

		ContactName:  rec.Contact.Name,
		ContactPhone: rec.Contact.Phone,
		ContactEmail: rec.Contact.Email,
	}
}

func FromBookingRecords(recs []models.BookingRecord) []BookingDTO {
	out := make([]BookingDTO, 0, len(recs))
	for i := range recs {
		out = append(out, FromBookingRecord(&recs[i]))
	}
	return out
}
