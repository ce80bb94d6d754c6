package create_booking

import "errors"

var (
	// ErrSessionTypeNotFound возвращается, когда услуга не найдена
	ErrSessionTypeNotFound = errors.New("create_booking: session type not found")

	// ErrNonWorkingDay возвращается, когда на выбранную дату нет рабочих часов
	ErrNonWorkingDay = errors.New("create_booking: trainer does not work on this date")

	// ErrInvalidDate возвращается при попытке забронировать прошедшую дату
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidTimeSlot возвращается, когда время начала не лежит на сетке слотов
	// или тренировка не помещается в рабочее окно
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда слот уже занят на момент коммита
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
