package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/junsalon/salon-api/internal/httperr"
	"github.com/junsalon/salon-api/internal/models"
)

func TestBookAppointmentSuccess(t *testing.T) {
	repo := new(mockRepo)
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	repo.On("IsSlotAvailable", context.Background(), date, uint(2)).Return(true, nil)
	repo.On("CreateBooking", context.Background(), mock.AnythingOfType("*models.BookingRecord")).
		Run(func(args mock.Arguments) {
			rec := args.Get(1).(*models.BookingRecord)
			rec.ID = 42
		}).
		Return(nil)

	uc := NewBookAppointment(repo, threeSlotTable(), testDispatcher())

	rec, err := uc.Execute(context.Background(), BookAppointmentInput{
		ContactID:   7,
		TimeSlotID:  2,
		Date:        date,
		Description: "trim",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(42), rec.ID)
	assert.Equal(t, uint(7), rec.ContactID)
	assert.Equal(t, uint(2), rec.TimeSlotID)
	repo.AssertExpectations(t)
}

func TestBookAppointmentSlotTaken(t *testing.T) {
	repo := new(mockRepo)
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	repo.On("IsSlotAvailable", context.Background(), date, uint(2)).Return(false, nil)

	uc := NewBookAppointment(repo, threeSlotTable(), testDispatcher())

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		ContactID:  7,
		TimeSlotID: 2,
		Date:       date,
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotTaken))
	repo.AssertNotCalled(t, "CreateBooking")
}

func TestBookAppointmentRaceLostAtInsert(t *testing.T) {
	repo := new(mockRepo)
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	// Pre-check said free, but a concurrent booker won the insert.
	repo.On("IsSlotAvailable", context.Background(), date, uint(2)).Return(true, nil)
	repo.On("CreateBooking", context.Background(), mock.AnythingOfType("*models.BookingRecord")).
		Return(httperr.ErrBusiness(httperr.CodeSlotTaken))

	uc := NewBookAppointment(repo, threeSlotTable(), testDispatcher())

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		ContactID:  7,
		TimeSlotID: 2,
		Date:       date,
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotTaken))
}

func TestBookAppointmentUnknownSlot(t *testing.T) {
	repo := new(mockRepo)
	uc := NewBookAppointment(repo, threeSlotTable(), testDispatcher())

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		ContactID:  7,
		TimeSlotID: 99,
		Date:       time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotUnknown))
	repo.AssertNotCalled(t, "IsSlotAvailable")
	repo.AssertNotCalled(t, "CreateBooking")
}

func TestBookAppointmentZeroDate(t *testing.T) {
	repo := new(mockRepo)
	uc := NewBookAppointment(repo, threeSlotTable(), testDispatcher())

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		ContactID:  7,
		TimeSlotID: 1,
	})
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidDate))
}

func TestBookAppointmentStorageErrorPassesThrough(t *testing.T) {
	repo := new(mockRepo)
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	storageErr := assert.AnError
	repo.On("IsSlotAvailable", context.Background(), date, uint(1)).Return(false, storageErr)

	uc := NewBookAppointment(repo, threeSlotTable(), testDispatcher())

	_, err := uc.Execute(context.Background(), BookAppointmentInput{
		ContactID:  7,
		TimeSlotID: 1,
		Date:       date,
	})
	assert.ErrorIs(t, err, storageErr)
}
