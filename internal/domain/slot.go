package domain

import "github.com/avpetrov/PT-BookingService/pkg/types"

// TimeSlot кандидат на время начала тренировки в конкретную дату.
// Эфемерный: пересчитывается на каждый запрос и нигде не хранится.
type TimeSlot struct {
	Time      types.TimeString
	Available bool
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов [aStart, aEnd) и
// [bStart, bEnd), заданных в минутах с начала суток.
// Строгие неравенства: интервалы, соприкасающиеся границами, НЕ пересекаются.
//
// Примеры:
// - [11:30, 12:30) и [11:20, 11:40) → пересекаются
// - [11:30, 12:30) и [11:00, 11:30) → не пересекаются (граничат)
// - [11:30, 12:30) и [12:30, 13:00) → не пересекаются (граничат)
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// HasBlockingOverlap проверяет, пересекается ли интервал [startMin, endMin)
// хотя бы с одним блокирующим бронированием из списка.
// excludeID исключает бронирование из проверки (нужно при переносе,
// чтобы бронирование не конфликтовало само с собой).
func HasBlockingOverlap(bookings []*Booking, startMin, endMin int, excludeID int64) bool {
	for _, booking := range bookings {
		if booking.ID == excludeID {
			continue
		}
		if !booking.IsBlocking() {
			continue
		}

		bookingStart, err := booking.StartTime.Minutes()
		if err != nil {
			// Некорректное время в хранилище пропускаем: оно не может блокировать
			continue
		}
		bookingEnd := bookingStart + booking.DurationMinutes

		if Overlaps(startMin, endMin, bookingStart, bookingEnd) {
			return true
		}
	}
	return false
}
