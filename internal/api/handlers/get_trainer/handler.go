package get_trainer

import (
	"errors"
	"net/http"

	"github.com/avpetrov/PT-BookingService/internal/api/handlers"
	"github.com/avpetrov/PT-BookingService/internal/service/catalog"
)

const (
	msgTrainerNotFound = "профиль тренера не найден"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/trainer
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	trainer, err := h.service.GetTrainer(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrTrainerNotFound):
			h.logger.Warn("GET /trainer - Trainer profile not found")
			handlers.RespondNotFound(w, msgTrainerNotFound)

		default:
			h.logger.Error("GET /trainer - Failed to get trainer: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, trainer)
}
