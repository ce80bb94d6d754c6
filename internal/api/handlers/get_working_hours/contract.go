package get_working_hours

import (
	"context"

	"github.com/avpetrov/PT-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListWorkingHours(ctx context.Context) (*models.WorkingHoursListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
