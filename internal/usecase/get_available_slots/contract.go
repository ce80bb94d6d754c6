package get_available_slots

import (
	"context"
	"time"

	"github.com/avpetrov/PT-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByDate получает все бронирования на конкретную дату
	GetByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error)
}

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetSessionType(ctx context.Context, id int64) (*domain.SessionType, error)
	GetWorkingHoursForDay(ctx context.Context, dayOfWeek int) (*domain.WorkingHours, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
