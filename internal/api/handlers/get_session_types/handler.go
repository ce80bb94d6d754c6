package get_session_types

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

// Handle GET /api/v1/session-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionTypes, err := h.service.ListSessionTypes(r.Context())
	if err != nil {
		h.logger.Error("GET /session-types - Failed to list session types: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, sessionTypes)
}
