package get_working_hours

import (
	"net/http"

	"github.com/avpetrov/PT-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	workingHours, err := h.service.ListWorkingHours(r.Context())
	if err != nil {
		h.logger.Error("GET /working-hours - Failed to list working hours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, workingHours)
}
