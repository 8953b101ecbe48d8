package booking

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"

	"github.com/junsalon/salon-api/internal/audit"
	"github.com/junsalon/salon-api/internal/models"
	"github.com/junsalon/salon-api/internal/slots"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) IsSlotAvailable(ctx context.Context, date time.Time, timeSlotID uint) (bool, error) {
	args := m.Called(ctx, date, timeSlotID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) ListDayBookings(ctx context.Context, date time.Time) ([]models.BookingRecord, error) {
	args := m.Called(ctx, date)
	return args.Get(0).([]models.BookingRecord), args.Error(1)
}

func (m *mockRepo) CreateBooking(ctx context.Context, rec *models.BookingRecord) error {
	return m.Called(ctx, rec).Error(0)
}

func (m *mockRepo) CancelBooking(ctx context.Context, bookingID uint) (bool, error) {
	args := m.Called(ctx, bookingID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) GetBookingByID(ctx context.Context, bookingID uint) (*models.BookingRecord, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingRecord), args.Error(1)
}

func (m *mockRepo) ListBookingsByContact(ctx context.Context, contactID uint, after time.Time) ([]models.BookingRecord, error) {
	args := m.Called(ctx, contactID, after)
	return args.Get(0).([]models.BookingRecord), args.Error(1)
}

func (m *mockRepo) ListBookingsByRange(ctx context.Context, start, end time.Time) ([]models.BookingRecord, error) {
	args := m.Called(ctx, start, end)
	return args.Get(0).([]models.BookingRecord), args.Error(1)
}

func (m *mockRepo) GetOrCreateContact(ctx context.Context, name, phone, email string) (*models.Contact, error) {
	args := m.Called(ctx, name, phone, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contact), args.Error(1)
}

func (m *mockRepo) FindContactByPhone(ctx context.Context, phone string) (*models.Contact, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contact), args.Error(1)
}

func (m *mockRepo) ListContacts(ctx context.Context) ([]models.Contact, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Contact), args.Error(1)
}

type noopSink struct{}

func (noopSink) Log(action string, entity string, entityID *uint, metadata any) error {
	return nil
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(noopSink{}, zerolog.Nop())
}

func threeSlotTable() *slots.Table {
	t, _ := slots.New([]slots.TimeSlot{
		{ID: 1, Start: "09:00", End: "10:00"},
		{ID: 2, Start: "10:00", End: "11:00"},
		{ID: 3, Start: "11:00", End: "12:00"},
	})
	return t
}
