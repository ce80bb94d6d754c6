package get_session_types

import (
	"context"

	"github.com/avpetrov/PT-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	ListSessionTypes(ctx context.Context) (*models.SessionTypeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
