package get_available_slots

import "errors"

var (
	// ErrSessionTypeNotFound возвращается, когда услуга не найдена.
	// Типизированная ошибка вместо тихого пустого списка: UI должен отличать
	// "услуги нет" от "нерабочий день".
	ErrSessionTypeNotFound = errors.New("get_available_slots: session type not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
