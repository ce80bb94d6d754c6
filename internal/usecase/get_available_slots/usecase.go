package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/avpetrov/PT-BookingService/internal/domain"
	catalogRepo "github.com/avpetrov/PT-BookingService/internal/infra/storage/catalog"
)

// UseCase use case для получения слотов, доступных для записи
type UseCase struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// Execute выполняет use case получения слотов.
// Доступность считается по актуальному состоянию бронирований на момент запроса,
// результаты пересечений нигде не кешируются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: session_type=%d, date=%s",
		req.SessionTypeID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу
	sessionType, err := uc.catalogRepo.GetSessionType(ctx, req.SessionTypeID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrSessionTypeNotFound) {
			uc.logger.Warn("GetAvailableSlots: session type id=%d not found", req.SessionTypeID)
			return nil, ErrSessionTypeNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get session type id=%d: %v", req.SessionTypeID, err)
		return nil, fmt.Errorf("%w: failed to get session type: %v", ErrInternal, err)
	}

	// 3. Получаем рабочие часы на день недели даты
	dayOfWeek := int(req.Date.Weekday())
	workingHours, err := uc.catalogRepo.GetWorkingHoursForDay(ctx, dayOfWeek)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrWorkingHoursNotFound) {
			// Нерабочий день - пустой список слотов, не ошибка
			uc.logger.Info("GetAvailableSlots: no working hours on weekday=%d (%s)",
				dayOfWeek, req.Date.Format(domain.DateFormat))
			return &Response{
				Date:            req.Date,
				SessionTypeID:   req.SessionTypeID,
				DurationMinutes: sessionType.DurationMinutes,
				Slots:           []domain.TimeSlot{},
			}, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	// 4. Генерируем сетку кандидатов
	timeSlots, err := generateTimeSlots(workingHours, sessionType.DurationMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate time slots: %v", err)
		return nil, err
	}

	// 5. Получаем бронирования на дату
	bookings, err := uc.bookingRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Помечаем занятость каждого кандидата
	slots, err := markAvailability(timeSlots, sessionType.DurationMinutes, bookings)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to mark availability: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for session_type=%d, date=%s",
		len(slots), req.SessionTypeID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:            req.Date,
		SessionTypeID:   req.SessionTypeID,
		DurationMinutes: sessionType.DurationMinutes,
		Slots:           slots,
	}, nil
}
