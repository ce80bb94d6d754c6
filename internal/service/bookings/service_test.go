package bookings

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avpetrov/PT-BookingService/internal/domain"
	bookingRepo "github.com/avpetrov/PT-BookingService/internal/infra/storage/booking"
	"github.com/avpetrov/PT-BookingService/internal/service/bookings/models"
	"github.com/avpetrov/PT-BookingService/pkg/ptr"
	"github.com/avpetrov/PT-BookingService/pkg/types"
)

var (
	testDate = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	testNow  = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
)

type fakeBookingRepo struct {
	booking *domain.Booking
	getErr  error
	list    []*domain.Booking

	listStatus *domain.BookingStatus

	cancelled       bool
	cancelReason    string
	cancelledByRole domain.CancellerRole
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	return f.booking, f.getErr
}

func (f *fakeBookingRepo) List(_ context.Context, status *domain.BookingStatus) ([]*domain.Booking, error) {
	f.listStatus = status
	return f.list, nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, _ int64, reason string, cancelledBy domain.CancellerRole) (*domain.Booking, error) {
	f.cancelled = true
	f.cancelReason = reason
	f.cancelledByRole = cancelledBy

	cancelled := *f.booking
	cancelled.Status = domain.StatusCancelled
	cancelled.CancellationReason = &reason
	cancelled.CancelledBy = &cancelledBy
	cancelled.CancelledAt = ptr.Ptr(testNow)
	return &cancelled, nil
}

type fakeCatalogRepo struct {
	trainer *domain.Trainer
}

func (f *fakeCatalogRepo) GetTrainer(_ context.Context) (*domain.Trainer, error) {
	return f.trainer, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTimeProvider struct{ now time.Time }

func (p fixedTimeProvider) Now() time.Time { return p.now }

func testTrainer() *domain.Trainer {
	return &domain.Trainer{
		ID:                1,
		Name:              "Алексей Петров",
		Timezone:          "UTC",
		CancelCutoffHours: 24,
	}
}

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:              10,
		SessionTypeID:   1,
		BookingDate:     testDate,
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 60,
		Status:          domain.StatusConfirmed,
		SessionTypeName: "Персональная тренировка",
		Price:           3000,
		Currency:        "RUB",
	}
}

func newTestService(repo *fakeBookingRepo, catalog *fakeCatalogRepo) *Service {
	svc := NewService(repo, catalog, nopLogger{})
	svc.timeProvider = fixedTimeProvider{now: testNow}
	return svc
}

func TestGetByID(t *testing.T) {
	t.Run("успешное получение", func(t *testing.T) {
		svc := newTestService(&fakeBookingRepo{booking: confirmedBooking()}, &fakeCatalogRepo{})

		resp, err := svc.GetByID(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, int64(10), resp.ID)
		assert.Equal(t, "10:00", resp.StartTime)
		assert.Equal(t, "2026-09-07", resp.BookingDate)
	})

	t.Run("бронирование не найдено", func(t *testing.T) {
		svc := newTestService(&fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}, &fakeCatalogRepo{})

		_, err := svc.GetByID(context.Background(), 999)
		require.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestList(t *testing.T) {
	t.Run("по умолчанию только подтверждённые", func(t *testing.T) {
		repo := &fakeBookingRepo{list: []*domain.Booking{confirmedBooking()}}
		svc := newTestService(repo, &fakeCatalogRepo{})

		resp, err := svc.List(context.Background(), &models.ListBookingsRequest{})
		require.NoError(t, err)
		require.Len(t, resp.Bookings, 1)

		require.NotNil(t, repo.listStatus)
		assert.Equal(t, domain.StatusConfirmed, *repo.listStatus)
	})

	t.Run("явный фильтр по статусу", func(t *testing.T) {
		repo := &fakeBookingRepo{}
		svc := newTestService(repo, &fakeCatalogRepo{})

		_, err := svc.List(context.Background(), &models.ListBookingsRequest{Status: ptr.Ptr("cancelled")})
		require.NoError(t, err)

		require.NotNil(t, repo.listStatus)
		assert.Equal(t, domain.StatusCancelled, *repo.listStatus)
	})

	t.Run("некорректный статус", func(t *testing.T) {
		svc := newTestService(&fakeBookingRepo{}, &fakeCatalogRepo{})

		_, err := svc.List(context.Background(), &models.ListBookingsRequest{Status: ptr.Ptr("pending")})
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestCancel(t *testing.T) {
	clientReq := &models.CancelBookingRequest{
		Reason:      "не смогу прийти",
		CancelledBy: domain.CancelledByClient,
	}

	t.Run("успешная отмена клиентом", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: confirmedBooking()}
		svc := newTestService(repo, &fakeCatalogRepo{trainer: testTrainer()})

		resp, err := svc.Cancel(context.Background(), 10, clientReq)
		require.NoError(t, err)

		assert.True(t, repo.cancelled)
		assert.Equal(t, "не смогу прийти", repo.cancelReason)
		assert.Equal(t, domain.CancelledByClient, repo.cancelledByRole)

		assert.Equal(t, string(domain.StatusCancelled), resp.Status)
		require.NotNil(t, resp.CancelledBy)
		assert.Equal(t, "client", *resp.CancelledBy)
	})

	t.Run("бронирование не найдено", func(t *testing.T) {
		svc := newTestService(&fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}, &fakeCatalogRepo{})

		_, err := svc.Cancel(context.Background(), 999, clientReq)
		require.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("повторная отмена запрещена", func(t *testing.T) {
		booking := confirmedBooking()
		booking.Status = domain.StatusCancelled
		repo := &fakeBookingRepo{booking: booking}
		svc := newTestService(repo, &fakeCatalogRepo{trainer: testTrainer()})

		_, err := svc.Cancel(context.Background(), 10, clientReq)
		require.ErrorIs(t, err, ErrAlreadyCancelled)
		assert.False(t, repo.cancelled)
	})

	t.Run("завершённое бронирование не отменяется", func(t *testing.T) {
		booking := confirmedBooking()
		booking.Status = domain.StatusCompleted
		svc := newTestService(&fakeBookingRepo{booking: booking}, &fakeCatalogRepo{trainer: testTrainer()})

		_, err := svc.Cancel(context.Background(), 10, clientReq)
		require.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("отмена клиентом внутри cutoff-окна запрещена", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: confirmedBooking()}
		svc := newTestService(repo, &fakeCatalogRepo{trainer: testTrainer()})

		// За 2 часа до начала тренировки
		svc.timeProvider = fixedTimeProvider{now: time.Date(2026, 9, 7, 8, 0, 0, 0, time.UTC)}

		_, err := svc.Cancel(context.Background(), 10, clientReq)
		require.ErrorIs(t, err, ErrCancellationWindowClosed)
		assert.False(t, repo.cancelled)
	})

	t.Run("отмена тренером не ограничена cutoff", func(t *testing.T) {
		repo := &fakeBookingRepo{booking: confirmedBooking()}
		svc := newTestService(repo, &fakeCatalogRepo{trainer: testTrainer()})
		svc.timeProvider = fixedTimeProvider{now: time.Date(2026, 9, 7, 8, 0, 0, 0, time.UTC)}

		trainerReq := &models.CancelBookingRequest{
			Reason:      "болезнь",
			CancelledBy: domain.CancelledByTrainer,
		}

		_, err := svc.Cancel(context.Background(), 10, trainerReq)
		require.NoError(t, err)
		assert.Equal(t, domain.CancelledByTrainer, repo.cancelledByRole)
	})

	t.Run("некорректная роль отменяющего", func(t *testing.T) {
		svc := newTestService(&fakeBookingRepo{booking: confirmedBooking()}, &fakeCatalogRepo{trainer: testTrainer()})

		_, err := svc.Cancel(context.Background(), 10, &models.CancelBookingRequest{CancelledBy: "admin"})
		require.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("слишком длинная причина", func(t *testing.T) {
		svc := newTestService(&fakeBookingRepo{booking: confirmedBooking()}, &fakeCatalogRepo{trainer: testTrainer()})

		req := &models.CancelBookingRequest{
			Reason:      strings.Repeat("a", domain.MaxCancellationReasonLength+1),
			CancelledBy: domain.CancelledByClient,
		}

		_, err := svc.Cancel(context.Background(), 10, req)
		require.ErrorIs(t, err, ErrInvalidInput)
	})
}
