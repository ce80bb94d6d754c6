package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/avpetrov/PT-BookingService/internal/api/handlers"
	getAvailableSlots "github.com/avpetrov/PT-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidSessionTypeID = "некорректный ID услуги"
	msgMissingSessionTypeID = "ID услуги обязателен"
	msgMissingDate          = "дата обязательна"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSessionTypeNotFound  = "услуга не найдена"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/available-slots
// Query params: sessionTypeId (required), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем sessionTypeId из query параметров
	sessionTypeIDStr := r.URL.Query().Get("sessionTypeId")
	if sessionTypeIDStr == "" {
		h.logger.Warn("GET /available-slots - Missing session type ID")
		handlers.RespondBadRequest(w, msgMissingSessionTypeID)
		return
	}

	sessionTypeID, err := strconv.ParseInt(sessionTypeIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid session type ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSessionTypeID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(sessionTypeID, dateStr)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrSessionTypeNotFound):
			h.logger.Warn("GET /available-slots - Session type not found: session_type_id=%d", sessionTypeID)
			handlers.RespondNotFound(w, msgSessionTypeNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: session_type_id=%d, date=%s, error=%v",
				sessionTypeID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /available-slots - Slots retrieved successfully: session_type_id=%d, date=%s, slots_count=%d",
		sessionTypeID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
