package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avpetrov/PT-BookingService/pkg/types"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		aStart   int
		aEnd     int
		bStart   int
		bEnd     int
		expected bool
	}{
		{
			name:   "частичное пересечение в начале",
			aStart: 690, aEnd: 750, // 11:30 - 12:30
			bStart: 680, bEnd: 700, // 11:20 - 11:40
			expected: true,
		},
		{
			name:   "полное вложение",
			aStart: 600, aEnd: 720, // 10:00 - 12:00
			bStart: 630, bEnd: 660, // 10:30 - 11:00
			expected: true,
		},
		{
			name:   "интервалы граничат: b заканчивается в начале a",
			aStart: 690, aEnd: 750, // 11:30 - 12:30
			bStart: 660, bEnd: 690, // 11:00 - 11:30
			expected: false,
		},
		{
			name:   "интервалы граничат: b начинается в конце a",
			aStart: 690, aEnd: 750, // 11:30 - 12:30
			bStart: 750, bEnd: 780, // 12:30 - 13:00
			expected: false,
		},
		{
			name:   "интервалы не соприкасаются",
			aStart: 540, aEnd: 600, // 09:00 - 10:00
			bStart: 720, bEnd: 780, // 12:00 - 13:00
			expected: false,
		},
		{
			name:   "идентичные интервалы",
			aStart: 600, aEnd: 660,
			bStart: 600, bEnd: 660,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Пересечение симметрично
			assert.Equal(t, tt.expected, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestHasBlockingOverlap(t *testing.T) {
	confirmed := makeBooking(t, 1, "10:00", 60, StatusConfirmed)
	cancelled := makeBooking(t, 2, "10:00", 60, StatusCancelled)
	completed := makeBooking(t, 3, "14:00", 60, StatusCompleted)

	t.Run("подтверждённое бронирование блокирует пересекающийся интервал", func(t *testing.T) {
		// 10:30 - 11:30 пересекается с 10:00 - 11:00
		assert.True(t, HasBlockingOverlap([]*Booking{confirmed}, 630, 690, 0))
	})

	t.Run("отменённое бронирование не блокирует", func(t *testing.T) {
		assert.False(t, HasBlockingOverlap([]*Booking{cancelled}, 630, 690, 0))
	})

	t.Run("завершённое бронирование не блокирует", func(t *testing.T) {
		assert.False(t, HasBlockingOverlap([]*Booking{completed}, 840, 900, 0))
	})

	t.Run("граничащие интервалы не конфликтуют", func(t *testing.T) {
		// 11:00 - 12:00 начинается ровно в конец 10:00 - 11:00
		assert.False(t, HasBlockingOverlap([]*Booking{confirmed}, 660, 720, 0))
	})

	t.Run("исключённое бронирование пропускается", func(t *testing.T) {
		assert.False(t, HasBlockingOverlap([]*Booking{confirmed}, 630, 690, confirmed.ID))
	})

	t.Run("исключение не отключает проверку остальных", func(t *testing.T) {
		other := makeBooking(t, 5, "10:30", 60, StatusConfirmed)
		assert.True(t, HasBlockingOverlap([]*Booking{confirmed, other}, 630, 690, confirmed.ID))
	})
}

func makeBooking(t *testing.T, id int64, startTime string, durationMinutes int, status BookingStatus) *Booking {
	t.Helper()

	start, err := types.NewTimeStringFromString(startTime)
	require.NoError(t, err)

	return &Booking{
		ID:              id,
		StartTime:       start,
		DurationMinutes: durationMinutes,
		Status:          status,
	}
}
