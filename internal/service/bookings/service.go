package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avpetrov/PT-BookingService/internal/domain"
	bookingRepo "github.com/avpetrov/PT-BookingService/internal/infra/storage/booking"
	"github.com/avpetrov/PT-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		timeProvider: &realTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает список бронирований
// По умолчанию возвращает только подтверждённые, опционально фильтрует по статусу
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings, status=%v", req.Status)

	// По умолчанию показываем только подтверждённые бронирования
	status := domain.StatusConfirmed
	if req.Status != nil {
		converted, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		status = converted
	}

	bookings, err := s.bookingRepo.List(ctx, &status)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Для отмены клиентом действует правило cutoff: до начала тренировки должно
// оставаться больше cancel_cutoff_hours часов. Отмена тренером правилом
// cutoff не ограничена.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by %s", bookingID, req.CancelledBy)

	if err := validateCancelRequest(req); err != nil {
		s.logger.Warn("Cancel: validation failed for booking id=%d: %v", bookingID, err)
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Повторная отмена и отмена завершённой тренировки запрещены
	if booking.IsCancelled() {
		s.logger.Warn("Cancel: booking id=%d is already cancelled", bookingID)
		return nil, ErrAlreadyCancelled
	}
	if !booking.CanBeModified() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return nil, ErrCannotCancel
	}

	// Правило cutoff действует только для отмены клиентом
	if req.CancelledBy == domain.CancelledByClient {
		if err := s.checkCancellationWindow(ctx, booking); err != nil {
			return nil, err
		}
	}

	cancelled, err := s.bookingRepo.Cancel(ctx, bookingID, req.Reason, req.CancelledBy)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d by %s", bookingID, req.CancelledBy)
	return models.FromDomainBooking(cancelled), nil
}

// checkCancellationWindow проверяет, что до начала тренировки осталось
// больше cutoff-окна тренера
func (s *Service) checkCancellationWindow(ctx context.Context, booking *domain.Booking) error {
	trainer, err := s.catalogRepo.GetTrainer(ctx)
	if err != nil {
		s.logger.Error("checkCancellationWindow: failed to get trainer: %v", err)
		return fmt.Errorf("%w: checkCancellationWindow - failed to get trainer: %v", ErrInternal, err)
	}

	loc, err := trainer.Location()
	if err != nil {
		s.logger.Error("checkCancellationWindow: invalid trainer timezone %q: %v", trainer.Timezone, err)
		return fmt.Errorf("%w: checkCancellationWindow - invalid trainer timezone: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now().In(loc)
	if !booking.WithinModificationWindow(trainer.CancelCutoffHours, now) {
		s.logger.Warn("checkCancellationWindow: cutoff window closed for booking id=%d (cutoff=%dh)",
			booking.ID, trainer.CancelCutoffHours)
		return ErrCancellationWindowClosed
	}

	return nil
}

// validateCancelRequest валидирует запрос на отмену
func validateCancelRequest(req *models.CancelBookingRequest) error {
	if req.CancelledBy != domain.CancelledByClient && req.CancelledBy != domain.CancelledByTrainer {
		return fmt.Errorf("%w: unknown canceller role %q", ErrInvalidInput, req.CancelledBy)
	}

	if len(req.Reason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason is too long (max %d characters)",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	return nil
}

// realTimeProvider реальный провайдер времени для production
type realTimeProvider struct{}

func (p *realTimeProvider) Now() time.Time {
	return time.Now()
}
