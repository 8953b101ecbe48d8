package booking

import (
	"context"
	"time"

	"github.com/junsalon/salon-api/internal/models"
)

type Repository interface {
	// -------- Availability --------
	IsSlotAvailable(
		ctx context.Context,
		date time.Time,
		timeSlotID uint,
	) (bool, error)

	ListDayBookings(
		ctx context.Context,
		date time.Time,
	) ([]models.BookingRecord, error)

	// -------- Booking (create / cancel) --------

	// CreateBooking inserts the record after re-checking the slot inside a
	// transaction. Returns ErrSlotTaken when another active booking holds
	// the (date, slot) pair.
	CreateBooking(
		ctx context.Context,
		rec *models.BookingRecord,
	) error

	// CancelBooking flips cancelled on the matching active record and
	// reports whether exactly one row was updated.
	CancelBooking(
		ctx context.Context,
		bookingID uint,
	) (bool, error)

	// -------- Booking (read) --------
	GetBookingByID(
		ctx context.Context,
		bookingID uint,
	) (*models.BookingRecord, error)

	ListBookingsByContact(
		ctx context.Context,
		contactID uint,
		after time.Time,
	) ([]models.BookingRecord, error)

	ListBookingsByRange(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.BookingRecord, error)

	// -------- Contact --------
	GetOrCreateContact(
		ctx context.Context,
		name string,
		phone string,
		email string,
	) (*models.Contact, error)

	FindContactByPhone(
		ctx context.Context,
		phone string,
	) (*models.Contact, error)

	ListContacts(
		ctx context.Context,
	) ([]models.Contact, error)
}
