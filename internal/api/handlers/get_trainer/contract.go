package get_trainer

import (
	"context"

	"github.com/avpetrov/PT-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	GetTrainer(ctx context.Context) (*models.TrainerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
