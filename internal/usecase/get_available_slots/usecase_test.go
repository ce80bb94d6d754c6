package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avpetrov/PT-BookingService/internal/domain"
	catalogRepo "github.com/avpetrov/PT-BookingService/internal/infra/storage/catalog"
	"github.com/avpetrov/PT-BookingService/pkg/types"
)

// Понедельник
var testDate = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeCatalogRepo struct {
	sessionType     *domain.SessionType
	sessionTypeErr  error
	workingHours    *domain.WorkingHours
	workingHoursErr error
}

func (f *fakeCatalogRepo) GetSessionType(_ context.Context, _ int64) (*domain.SessionType, error) {
	return f.sessionType, f.sessionTypeErr
}

func (f *fakeCatalogRepo) GetWorkingHoursForDay(_ context.Context, _ int) (*domain.WorkingHours, error) {
	return f.workingHours, f.workingHoursErr
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(bookingRepo *fakeBookingRepo, catalog *fakeCatalogRepo) *UseCase {
	return NewUseCase(bookingRepo, catalog, nopLogger{})
}

func sessionType60() *domain.SessionType {
	return &domain.SessionType{
		ID:              1,
		Name:            "Персональная тренировка",
		DurationMinutes: 60,
		Price:           3000,
		Currency:        "RUB",
	}
}

func workingDay(start, end string) *domain.WorkingHours {
	return &domain.WorkingHours{
		DayOfWeek: 1,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

func confirmedBooking(id int64, startTime string, durationMinutes int) *domain.Booking {
	return &domain.Booking{
		ID:              id,
		BookingDate:     testDate,
		StartTime:       types.TimeString(startTime),
		DurationMinutes: durationMinutes,
		Status:          domain.StatusConfirmed,
	}
}

func TestExecute_FullGridWithoutBookings(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeCatalogRepo{sessionType: sessionType60(), workingHours: workingDay("09:00", "18:00")},
	)

	resp, err := uc.Execute(context.Background(), &Request{SessionTypeID: 1, Date: testDate})
	require.NoError(t, err)

	// 09:00 - 18:00 с шагом 30 минут для часовой тренировки: последний старт 17:00
	require.Len(t, resp.Slots, 17)
	assert.Equal(t, "09:00", resp.Slots[0].Time.String())
	assert.Equal(t, "17:00", resp.Slots[len(resp.Slots)-1].Time.String())
	assert.Equal(t, 60, resp.DurationMinutes)

	for _, slot := range resp.Slots {
		assert.True(t, slot.Available, "slot %s must be available", slot.Time)
	}
}

func TestExecute_ConfirmedBookingBlocksOverlappingSlots(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{bookings: []*domain.Booking{confirmedBooking(1, "10:00", 60)}},
		&fakeCatalogRepo{sessionType: sessionType60(), workingHours: workingDay("09:00", "18:00")},
	)

	resp, err := uc.Execute(context.Background(), &Request{SessionTypeID: 1, Date: testDate})
	require.NoError(t, err)

	availability := make(map[string]bool)
	for _, slot := range resp.Slots {
		availability[slot.Time.String()] = slot.Available
	}

	// Бронирование 10:00 - 11:00 задевает часовые тренировки с 09:30, 10:00 и 10:30
	assert.False(t, availability["09:30"])
	assert.False(t, availability["10:00"])
	assert.False(t, availability["10:30"])

	// Граничащие слоты свободны: 09:00 - 10:00 и 11:00 - 12:00
	assert.True(t, availability["09:00"])
	assert.True(t, availability["11:00"])
}

func TestExecute_CancelledBookingDoesNotBlock(t *testing.T) {
	cancelled := confirmedBooking(1, "10:00", 60)
	cancelled.Status = domain.StatusCancelled

	uc := newTestUseCase(
		&fakeBookingRepo{bookings: []*domain.Booking{cancelled}},
		&fakeCatalogRepo{sessionType: sessionType60(), workingHours: workingDay("09:00", "18:00")},
	)

	resp, err := uc.Execute(context.Background(), &Request{SessionTypeID: 1, Date: testDate})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		assert.True(t, slot.Available, "slot %s must be available", slot.Time)
	}
}

func TestExecute_LastSlotEndsExactlyAtClose(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeCatalogRepo{sessionType: sessionType60(), workingHours: workingDay("09:00", "10:00")},
	)

	resp, err := uc.Execute(context.Background(), &Request{SessionTypeID: 1, Date: testDate})
	require.NoError(t, err)

	// Единственный кандидат: тренировка 09:00 - 10:00 заканчивается ровно в закрытие
	require.Len(t, resp.Slots, 1)
	assert.Equal(t, "09:00", resp.Slots[0].Time.String())
}

func TestExecute_DurationLongerThanWindow(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeCatalogRepo{
			sessionType:  &domain.SessionType{ID: 2, Name: "Сплит-тренировка", DurationMinutes: 90},
			workingHours: workingDay("09:00", "10:00"),
		},
	)

	resp, err := uc.Execute(context.Background(), &Request{SessionTypeID: 2, Date: testDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_NonWorkingDayReturnsEmptySlots(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeCatalogRepo{
			sessionType:     sessionType60(),
			workingHoursErr: catalogRepo.ErrWorkingHoursNotFound,
		},
	)

	resp, err := uc.Execute(context.Background(), &Request{SessionTypeID: 1, Date: testDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.Equal(t, 60, resp.DurationMinutes)
}

func TestExecute_UnknownSessionType(t *testing.T) {
	uc := newTestUseCase(
		&fakeBookingRepo{},
		&fakeCatalogRepo{sessionTypeErr: catalogRepo.ErrSessionTypeNotFound},
	)

	_, err := uc.Execute(context.Background(), &Request{SessionTypeID: 999, Date: testDate})
	require.ErrorIs(t, err, ErrSessionTypeNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{})

	_, err := uc.Execute(context.Background(), &Request{SessionTypeID: 0, Date: testDate})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{SessionTypeID: 1})
	require.ErrorIs(t, err, ErrInvalidInput)
}
