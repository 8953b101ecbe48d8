package repository

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	domain "github.com/junsalon/salon-api/internal/domain/booking"
	"github.com/junsalon/salon-api/internal/httperr"
	"github.com/junsalon/salon-api/internal/models"
)

type BookingGormRepository struct {
	db  *gorm.DB
	log zerolog.Logger
}

func NewBookingGormRepository(db *gorm.DB, log zerolog.Logger) *BookingGormRepository {
	return &BookingGormRepository{db: db, log: log}
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) IsSlotAvailable(
	ctx context.Context,
	date time.Time,
	timeSlotID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.BookingRecord{}).
		Where(
			"date = ? AND time_slot_id = ? AND cancelled = false",
			date, timeSlotID,
		).
		Count(&count).Error; err != nil {
		r.log.Error().Err(err).Time("date", date).Uint("slot", timeSlotID).
			Msg("availability check failed")
		return false, err
	}

	return count == 0, nil
}

func (r *BookingGormRepository) ListDayBookings(
	ctx context.Context,
	date time.Time,
) ([]models.BookingRecord, error) {

	var recs []models.BookingRecord
	if err := r.db.WithContext(ctx).
		Select("time_slot_id", "date").
		Where("date = ? AND cancelled = false", date).
		Order("time_slot_id ASC").
		Find(&recs).Error; err != nil {
		r.log.Error().Err(err).Time("date", date).Msg("day booking list failed")
		return nil, err
	}

	return recs, nil
}

// --------------------------------------------------
// Booking (create / cancel)
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	rec *models.BookingRecord,
) error {

	rec.CreatedDate = time.Now()
	rec.Cancelled = false

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.BookingRecord{}).
			Where(
				"date = ? AND time_slot_id = ? AND cancelled = false",
				rec.Date, rec.TimeSlotID,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}

		return tx.Create(rec).Error
	})

	if err != nil {
		// The partial unique index is the authoritative guard: a racing
		// insert that slips past the re-check comes back as a unique
		// violation and is reported as the same conflict.
		if httperr.IsUniqueViolation(err) {
			return httperr.ErrBusiness(httperr.CodeSlotTaken)
		}
		if httperr.IsBusiness(err, httperr.CodeSlotTaken) {
			return err
		}

		r.log.Error().Err(err).
			Time("date", rec.Date).Uint("slot", rec.TimeSlotID).
			Msg("booking insert failed")
		return err
	}

	return nil
}

func (r *BookingGormRepository) CancelBooking(
	ctx context.Context,
	bookingID uint,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Model(&models.BookingRecord{}).
		Where("id = ? AND cancelled = false", bookingID).
		Update("cancelled", true)

	if res.Error != nil {
		r.log.Error().Err(res.Error).Uint("booking_id", bookingID).
			Msg("booking cancel failed")
		return false, res.Error
	}

	return res.RowsAffected == 1, nil
}

// --------------------------------------------------
// Booking (read)
// --------------------------------------------------

func (r *BookingGormRepository) GetBookingByID(
	ctx context.Context,
	bookingID uint,
) (*models.BookingRecord, error) {

	var rec models.BookingRecord
	err := r.db.WithContext(ctx).
		Preload("Contact").
		First(&rec, bookingID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
		}
		r.log.Error().Err(err).Uint("booking_id", bookingID).
			Msg("booking fetch failed")
		return nil, err
	}

	return &rec, nil
}

func (r *BookingGormRepository) ListBookingsByContact(
	ctx context.Context,
	contactID uint,
	after time.Time,
) ([]models.BookingRecord, error) {

	var recs []models.BookingRecord
	if err := r.db.WithContext(ctx).
		Where(
			"contact_id = ? AND date > ? AND cancelled = false",
			contactID, after,
		).
		Order("date ASC, time_slot_id ASC").
		Find(&recs).Error; err != nil {
		r.log.Error().Err(err).Uint("contact_id", contactID).
			Msg("contact booking list failed")
		return nil, err
	}

	return recs, nil
}

func (r *BookingGormRepository) ListBookingsByRange(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.BookingRecord, error) {

	var recs []models.BookingRecord
	if err := r.db.WithContext(ctx).
		Preload("Contact").
		Where(
			"date >= ? AND date <= ? AND cancelled = false",
			start, end,
		).
		Order("date ASC, time_slot_id ASC").
		Find(&recs).Error; err != nil {
		r.log.Error().Err(err).
			Time("start", start).Time("end", end).
			Msg("range booking list failed")
		return nil, err
	}

	return recs, nil
}

// --------------------------------------------------
// Contact
// --------------------------------------------------

func (r *BookingGormRepository) GetOrCreateContact(
	ctx context.Context,
	name string,
	phone string,
	email string,
) (*models.Contact, error) {

	var contact models.Contact
	err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&contact).Error

	if err == nil {
		return &contact, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		r.log.Error().Err(err).Str("phone", phone).Msg("contact lookup failed")
		return nil, err
	}

	contact = models.Contact{
		Name:  name,
		Phone: phone,
		Email: email,
	}

	if err := r.db.WithContext(ctx).Create(&contact).Error; err != nil {
		r.log.Error().Err(err).Str("phone", phone).Msg("contact create failed")
		return nil, err
	}

	return &contact, nil
}

func (r *BookingGormRepository) FindContactByPhone(
	ctx context.Context,
	phone string,
) (*models.Contact, error) {

	var contact models.Contact
	err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&contact).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeContactNotFound)
		}
		r.log.Error().Err(err).Str("phone", phone).Msg("contact lookup failed")
		return nil, err
	}

	return &contact, nil
}

func (r *BookingGormRepository) ListContacts(
	ctx context.Context,
) ([]models.Contact, error) {

	var contacts []models.Contact
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&contacts).Error; err != nil {
		r.log.Error().Err(err).Msg("contact list failed")
		return nil, err
	}

	return contacts, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
