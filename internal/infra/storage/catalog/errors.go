package catalog

import "errors"

var (
	// ErrTrainerNotFound возвращается, когда профиль тренера отсутствует в БД
	ErrTrainerNotFound = errors.New("catalog.repository: trainer not found")

	// ErrSessionTypeNotFound возвращается, когда услуга не найдена
	ErrSessionTypeNotFound = errors.New("catalog.repository: session type not found")

	// ErrWorkingHoursNotFound возвращается, когда на день недели нет строки расписания
	ErrWorkingHoursNotFound = errors.New("catalog.repository: working hours not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
