package engagement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInquiry(t *testing.T) {
	t.Run("starts in the new state", func(t *testing.T) {
		clientID := int64(3)
		inquiry, err := NewInquiry(4, &clientID, "Is the garden included?")
		require.NoError(t, err)

		assert.Equal(t, InquiryStatusNew, inquiry.Status)
		assert.Equal(t, &clientID, inquiry.ClientID)
		assert.False(t, inquiry.CreatedAt.IsZero())
	})

	t.Run("walk-in inquiry has no client", func(t *testing.T) {
		inquiry, err := NewInquiry(4, nil, "Saw the sign out front")
		require.NoError(t, err)
		assert.Nil(t, inquiry.ClientID)
	})

	t.Run("empty message", func(t *testing.T) {
		_, err := NewInquiry(4, nil, "")
		assert.ErrorIs(t, err, ErrEmptyMessage)
	})
}

func TestNewAppointment(t *testing.T) {
	t.Run("starts scheduled", func(t *testing.T) {
		date := time.Date(2024, 4, 1, 10, 30, 0, 0, time.UTC)
		appointment, err := NewAppointment(4, 2, 3, date)
		require.NoError(t, err)

		assert.Equal(t, AppointmentStatusScheduled, appointment.Status)
		assert.Equal(t, date, appointment.AppointmentDate)
	})

	t.Run("zero date", func(t *testing.T) {
		_, err := NewAppointment(4, 2, 3, time.Time{})
		assert.ErrorIs(t, err, ErrZeroAppointmentDate)
	})
}
