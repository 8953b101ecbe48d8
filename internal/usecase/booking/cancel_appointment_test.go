package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCancelAppointment(t *testing.T) {
	repo := new(mockRepo)
	repo.On("CancelBooking", context.Background(), uint(5)).Return(true, nil)

	uc := NewCancelAppointment(repo, testDispatcher())

	ok, err := uc.Execute(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCancelAppointmentUnknownID(t *testing.T) {
	repo := new(mockRepo)
	repo.On("CancelBooking", context.Background(), uint(999)).Return(false, nil)

	uc := NewCancelAppointment(repo, testDispatcher())

	ok, err := uc.Execute(context.Background(), 999)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCancelAppointmentStorageError(t *testing.T) {
	repo := new(mockRepo)
	repo.On("CancelBooking", context.Background(), uint(5)).Return(false, assert.AnError)

	uc := NewCancelAppointment(repo, testDispatcher())

	ok, err := uc.Execute(context.Background(), 5)
	assert.ErrorIs(t, err, assert.AnError)
	assert.False(t, ok)
}
