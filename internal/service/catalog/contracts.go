package catalog

import (
	"context"

	"github.com/avpetrov/PT-BookingService/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetTrainer(ctx context.Context) (*domain.Trainer, error)
	ListSessionTypes(ctx context.Context) ([]*domain.SessionType, error)
	ListWorkingHours(ctx context.Context) ([]*domain.WorkingHours, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
