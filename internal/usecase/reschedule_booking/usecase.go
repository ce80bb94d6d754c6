package reschedule_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/avpetrov/PT-BookingService/internal/domain"
	bookingRepo "github.com/avpetrov/PT-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/avpetrov/PT-BookingService/internal/infra/storage/catalog"
)

// UseCase use case для переноса бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case переноса бронирования.
// Бронирование обновляется на месте: идентификатор и статус не меняются,
// длительность берётся из снапшота услуги. Правило cutoff проверяется
// по ИСХОДНОМУ времени начала. Проверка занятости нового слота выполняется
// в сериализуемой транзакции, как и при создании; само переносимое
// бронирование из проверки исключается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: booking=%d, date=%s, time=%s",
		req.BookingID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Новая дата не должна быть в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("RescheduleBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("RescheduleBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("RescheduleBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 4. Переносить можно только подтверждённое бронирование
	if !booking.CanBeModified() {
		uc.logger.Warn("RescheduleBooking: booking id=%d is not modifiable, status=%s",
			booking.ID, booking.Status)
		return nil, ErrBookingNotModifiable
	}

	// 5. Правило cutoff по исходному времени начала
	trainer, err := uc.catalogRepo.GetTrainer(ctx)
	if err != nil {
		uc.logger.Error("RescheduleBooking: failed to get trainer: %v", err)
		return nil, fmt.Errorf("%w: failed to get trainer: %v", ErrInternal, err)
	}

	loc, err := trainer.Location()
	if err != nil {
		uc.logger.Error("RescheduleBooking: invalid trainer timezone %q: %v", trainer.Timezone, err)
		return nil, fmt.Errorf("%w: invalid trainer timezone: %v", ErrInternal, err)
	}

	if !booking.WithinModificationWindow(trainer.CancelCutoffHours, now.In(loc)) {
		uc.logger.Warn("RescheduleBooking: cutoff window closed for booking id=%d (cutoff=%dh)",
			booking.ID, trainer.CancelCutoffHours)
		return nil, ErrModificationWindowClosed
	}

	var result *domain.Booking

	// 6. Операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Рабочие часы на новую дату
		dayOfWeek := int(req.Date.Weekday())
		workingHours, err := uc.catalogRepo.GetWorkingHoursForDay(txCtx, dayOfWeek)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrWorkingHoursNotFound) {
				uc.logger.Warn("RescheduleBooking: no working hours on weekday=%d", dayOfWeek)
				return ErrNonWorkingDay
			}
			uc.logger.Error("RescheduleBooking: failed to get working hours: %v", err)
			return fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
		}

		// 6.2. Новый слот должен лежать на сетке и помещаться в рабочее окно
		startMin, endMin, err := validateSlot(workingHours, req.StartTime, booking.DurationMinutes)
		if err != nil {
			uc.logger.Warn("RescheduleBooking: slot validation failed: %v", err)
			return err
		}

		// 6.3. Бронирования новой даты с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6.4. Проверка пересечений, исключая само переносимое бронирование
		if domain.HasBlockingOverlap(bookings, startMin, endMin, booking.ID) {
			uc.logger.Warn("RescheduleBooking: slot %s is already taken on %s",
				req.StartTime, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 6.5. Обновляем бронирование на месте
		updated, err := uc.bookingRepo.Reschedule(txCtx, booking.ID, req.Date, req.StartTime)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to reschedule booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to reschedule booking: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: successfully rescheduled booking id=%d to %s %s (reason=%q)",
		result.ID, result.BookingDate.Format(domain.DateFormat), result.StartTime, req.Reason)

	return &Response{
		ID:              result.ID,
		SessionTypeID:   result.SessionTypeID,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		SessionTypeName: result.SessionTypeName,
		Price:           result.Price,
		Currency:        result.Currency,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
