package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avpetrov/PT-BookingService/pkg/types"
)

func TestBooking_WithinModificationWindow(t *testing.T) {
	start, err := types.NewTimeStringFromString("10:00")
	require.NoError(t, err)

	booking := &Booking{
		BookingDate: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		StartTime:   start,
		Status:      StatusConfirmed,
	}

	tests := []struct {
		name     string
		now      time.Time
		expected bool
	}{
		{
			name:     "до начала больше cutoff",
			now:      time.Date(2026, 9, 8, 10, 0, 0, 0, time.UTC),
			expected: true,
		},
		{
			name:     "до начала ровно cutoff - окно уже закрыто",
			now:      time.Date(2026, 9, 9, 10, 0, 0, 0, time.UTC),
			expected: false,
		},
		{
			name:     "до начала чуть больше cutoff",
			now:      time.Date(2026, 9, 9, 9, 59, 0, 0, time.UTC),
			expected: true,
		},
		{
			name:     "до начала меньше cutoff",
			now:      time.Date(2026, 9, 10, 8, 0, 0, 0, time.UTC),
			expected: false,
		},
		{
			name:     "тренировка уже началась",
			now:      time.Date(2026, 9, 10, 10, 30, 0, 0, time.UTC),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, booking.WithinModificationWindow(24, tt.now))
		})
	}
}

func TestBooking_StartsAtEndsAt(t *testing.T) {
	start, err := types.NewTimeStringFromString("09:30")
	require.NoError(t, err)

	booking := &Booking{
		BookingDate:     time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		StartTime:       start,
		DurationMinutes: 90,
	}

	startsAt := booking.StartsAt(time.UTC)
	assert.Equal(t, time.Date(2026, 9, 10, 9, 30, 0, 0, time.UTC), startsAt)

	endsAt := booking.EndsAt(time.UTC)
	assert.Equal(t, time.Date(2026, 9, 10, 11, 0, 0, 0, time.UTC), endsAt)
}

func TestBooking_StatusPredicates(t *testing.T) {
	confirmed := &Booking{Status: StatusConfirmed}
	cancelled := &Booking{Status: StatusCancelled}
	completed := &Booking{Status: StatusCompleted}

	assert.True(t, confirmed.IsBlocking())
	assert.True(t, confirmed.CanBeModified())
	assert.False(t, confirmed.IsCancelled())

	assert.False(t, cancelled.IsBlocking())
	assert.False(t, cancelled.CanBeModified())
	assert.True(t, cancelled.IsCancelled())

	assert.False(t, completed.IsBlocking())
	assert.False(t, completed.CanBeModified())
	assert.False(t, completed.IsCancelled())
}
