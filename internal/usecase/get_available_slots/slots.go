package get_available_slots

import (
	"fmt"

	"github.com/avpetrov/PT-BookingService/internal/domain"
	"github.com/avpetrov/PT-BookingService/pkg/types"
)

// generateTimeSlots генерирует сетку кандидатов на дату по строке расписания.
// Кандидаты идут с шагом domain.SlotStepMinutes от начала рабочего дня, пока
// тренировка целиком помещается в рабочее окно: start + duration <= end.
// Частично вылезающий за конец окна слот не генерируется никогда; последний
// кандидат, чья тренировка заканчивается ровно в конец окна, генерируется.
func generateTimeSlots(workingHours *domain.WorkingHours, durationMinutes int) ([]types.TimeString, error) {
	openMin, err := workingHours.StartTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: working hours start: %v", ErrInternal, err)
	}

	closeMin, err := workingHours.EndTime.Minutes()
	if err != nil {
		return nil, fmt.Errorf("%w: working hours end: %v", ErrInternal, err)
	}

	slots := make([]types.TimeString, 0)

	for startMin := openMin; startMin+durationMinutes <= closeMin; startMin += domain.SlotStepMinutes {
		slot, err := types.NewTimeStringFromMinutes(startMin)
		if err != nil {
			return nil, fmt.Errorf("%w: format slot start: %v", ErrInternal, err)
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

// markAvailability помечает каждый кандидат как доступный или занятый.
// Слот занят, если интервал [start, start+duration) пересекается хотя бы
// с одним блокирующим (подтверждённым) бронированием. Отменённые бронирования
// слоты не блокируют. Кандидаты из результата не выбрасываются: вызывающий
// получает всю сетку и фильтрует сам.
func markAvailability(
	slots []types.TimeString,
	durationMinutes int,
	bookings []*domain.Booking,
) ([]domain.TimeSlot, error) {
	result := make([]domain.TimeSlot, len(slots))

	for i, slotStart := range slots {
		startMin, err := slotStart.Minutes()
		if err != nil {
			return nil, fmt.Errorf("%w: parse slot start: %v", ErrInternal, err)
		}
		endMin := startMin + durationMinutes

		result[i] = domain.TimeSlot{
			Time:      slotStart,
			Available: !domain.HasBlockingOverlap(bookings, startMin, endMin, 0),
		}
	}

	return result, nil
}
