package catalog

import "errors"

var (
	// ErrTrainerNotFound возвращается, когда профиль тренера отсутствует в БД
	ErrTrainerNotFound = errors.New("trainer not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
