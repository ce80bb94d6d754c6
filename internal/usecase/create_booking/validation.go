package create_booking

import (
	"fmt"
	"time"

	"github.com/avpetrov/PT-BookingService/internal/domain"
	"github.com/avpetrov/PT-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SessionTypeID <= 0 {
		return fmt.Errorf("%w: sessionTypeID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(bookingDate time.Time, now time.Time) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}
	return nil
}

// validateSlot проверяет, что время начала лежит на сетке слотов рабочего окна
// и что тренировка целиком помещается в окно.
// Возвращает интервал слота в минутах с начала суток.
func validateSlot(
	workingHours *domain.WorkingHours,
	startTime types.TimeString,
	durationMinutes int,
) (startMin int, endMin int, err error) {
	openMin, err := workingHours.StartTime.Minutes()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: working hours start: %v", ErrInternal, err)
	}

	closeMin, err := workingHours.EndTime.Minutes()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: working hours end: %v", ErrInternal, err)
	}

	startMin, err = startTime.Minutes()
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	endMin = startMin + durationMinutes

	if startMin < openMin || endMin > closeMin {
		return 0, 0, fmt.Errorf("%w: %s does not fit working hours %s-%s",
			ErrInvalidTimeSlot, startTime, workingHours.StartTime, workingHours.EndTime)
	}

	if (startMin-openMin)%domain.SlotStepMinutes != 0 {
		return 0, 0, fmt.Errorf("%w: %s is not on the %d-minute grid",
			ErrInvalidTimeSlot, startTime, domain.SlotStepMinutes)
	}

	return startMin, endMin, nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
