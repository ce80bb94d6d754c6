package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/avpetrov/PT-BookingService/internal/domain"
	catalogRepo "github.com/avpetrov/PT-BookingService/internal/infra/storage/catalog"
)

// UseCase use case для создания бронирования
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

// Execute выполняет use case создания бронирования.
// Проверка доступности слота повторяется внутри сериализуемой транзакции
// с блокировкой бронирований дня: слот, занятый между запросом слотов и
// коммитом, приводит к ErrSlotNotAvailable, а не к двойной записи.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: session_type=%d, date=%s, time=%s",
		req.SessionTypeID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не должна быть в прошлом
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем услугу (снапшот попадёт в бронирование)
	sessionType, err := uc.catalogRepo.GetSessionType(ctx, req.SessionTypeID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrSessionTypeNotFound) {
			uc.logger.Warn("CreateBooking: session type id=%d not found", req.SessionTypeID)
			return nil, ErrSessionTypeNotFound
		}
		uc.logger.Error("CreateBooking: failed to get session type id=%d: %v", req.SessionTypeID, err)
		return nil, fmt.Errorf("%w: failed to get session type: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 4. Операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Рабочие часы на день недели даты
		dayOfWeek := int(req.Date.Weekday())
		workingHours, err := uc.catalogRepo.GetWorkingHoursForDay(txCtx, dayOfWeek)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrWorkingHoursNotFound) {
				uc.logger.Warn("CreateBooking: no working hours on weekday=%d", dayOfWeek)
				return ErrNonWorkingDay
			}
			uc.logger.Error("CreateBooking: failed to get working hours: %v", err)
			return fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
		}

		// 4.2. Слот должен лежать на сетке и помещаться в рабочее окно
		startMin, endMin, err := validateSlot(workingHours, req.StartTime, sessionType.DurationMinutes)
		if err != nil {
			uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
			return err
		}

		// 4.3. Бронирования дня с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 4.4. Повторная проверка пересечений на момент коммита
		if domain.HasBlockingOverlap(bookings, startMin, endMin, 0) {
			uc.logger.Warn("CreateBooking: slot %s is already taken on %s",
				req.StartTime, req.Date.Format(domain.DateFormat))
			return ErrSlotNotAvailable
		}

		// 4.5. Создаем бронирование со снапшотом услуги
		booking := &domain.Booking{
			SessionTypeID:   req.SessionTypeID,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: sessionType.DurationMinutes,
			Status:          domain.StatusConfirmed,
			SessionTypeName: sessionType.Name,
			Price:           sessionType.Price,
			Currency:        sessionType.Currency,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

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
