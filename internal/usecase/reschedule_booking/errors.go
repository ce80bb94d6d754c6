package reschedule_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrBookingNotModifiable возвращается при попытке перенести отменённое
	// или завершённое бронирование
	ErrBookingNotModifiable = errors.New("reschedule_booking: booking cannot be modified")

	// ErrModificationWindowClosed возвращается, когда до начала тренировки
	// осталось меньше cutoff-окна тренера
	ErrModificationWindowClosed = errors.New("reschedule_booking: modification window is closed")

	// ErrNonWorkingDay возвращается, когда на новую дату нет рабочих часов
	ErrNonWorkingDay = errors.New("reschedule_booking: trainer does not work on this date")

	// ErrInvalidDate возвращается при попытке переноса на прошедшую дату
	ErrInvalidDate = errors.New("reschedule_booking: invalid booking date")

	// ErrInvalidTimeSlot возвращается, когда новое время не лежит на сетке слотов
	// или тренировка не помещается в рабочее окно
	ErrInvalidTimeSlot = errors.New("reschedule_booking: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда новый слот уже занят на момент коммита
	ErrSlotNotAvailable = errors.New("reschedule_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)
