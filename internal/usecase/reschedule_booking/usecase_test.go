package reschedule_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avpetrov/PT-BookingService/internal/domain"
	bookingRepo "github.com/avpetrov/PT-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/avpetrov/PT-BookingService/internal/infra/storage/catalog"
	"github.com/avpetrov/PT-BookingService/pkg/types"
)

// Понедельник и следующий за ним вторник
var (
	testDate    = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	testNewDate = time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)
)

// now за несколько дней до тренировки: cutoff-окно открыто
var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

type fakeBookingRepo struct {
	booking     *domain.Booking
	getErr      error
	dayBookings []*domain.Booking

	rescheduled     bool
	rescheduledDate time.Time
	rescheduledTime types.TimeString
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	return f.booking, f.getErr
}

func (f *fakeBookingRepo) GetByDate(_ context.Context, _ time.Time) ([]*domain.Booking, error) {
	return f.dayBookings, nil
}

func (f *fakeBookingRepo) Reschedule(_ context.Context, _ int64, date time.Time, startTime types.TimeString) (*domain.Booking, error) {
	f.rescheduled = true
	f.rescheduledDate = date
	f.rescheduledTime = startTime

	updated := *f.booking
	updated.BookingDate = date
	updated.StartTime = startTime
	updated.UpdatedAt = testNow
	return &updated, nil
}

type fakeCatalogRepo struct {
	trainer         *domain.Trainer
	workingHours    *domain.WorkingHours
	workingHoursErr error
}

func (f *fakeCatalogRepo) GetTrainer(_ context.Context) (*domain.Trainer, error) {
	return f.trainer, nil
}

func (f *fakeCatalogRepo) GetWorkingHoursForDay(_ context.Context, _ int) (*domain.WorkingHours, error) {
	return f.workingHours, f.workingHoursErr
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct{ now time.Time }

func (p fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testTrainer() *domain.Trainer {
	return &domain.Trainer{
		ID:                1,
		Name:              "Алексей Петров",
		Timezone:          "UTC",
		CancelCutoffHours: 24,
	}
}

func testBooking() *domain.Booking {
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

func workingDay(start, end string) *domain.WorkingHours {
	return &domain.WorkingHours{
		DayOfWeek: 2,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

func newTestUseCase(repo *fakeBookingRepo, catalog *fakeCatalogRepo) *UseCase {
	uc := NewUseCase(repo, catalog, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTimeProvider{now: testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		BookingID: 10,
		Date:      testNewDate,
		StartTime: types.TimeString("14:00"),
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking()}
	uc := newTestUseCase(repo, &fakeCatalogRepo{
		trainer:      testTrainer(),
		workingHours: workingDay("09:00", "18:00"),
	})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, repo.rescheduled)
	assert.Equal(t, testNewDate, repo.rescheduledDate)
	assert.Equal(t, "14:00", repo.rescheduledTime.String())

	// ID и статус не меняются, длительность берётся из снапшота
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, "14:00", resp.StartTime.String())
}

func TestExecute_BookingNotFound(t *testing.T) {
	repo := &fakeBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	uc := newTestUseCase(repo, &fakeCatalogRepo{trainer: testTrainer()})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_CancelledBookingNotModifiable(t *testing.T) {
	booking := testBooking()
	booking.Status = domain.StatusCancelled

	uc := newTestUseCase(&fakeBookingRepo{booking: booking}, &fakeCatalogRepo{trainer: testTrainer()})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrBookingNotModifiable)
}

func TestExecute_CutoffWindowClosed(t *testing.T) {
	repo := &fakeBookingRepo{booking: testBooking()}
	uc := newTestUseCase(repo, &fakeCatalogRepo{
		trainer:      testTrainer(),
		workingHours: workingDay("09:00", "18:00"),
	})

	// За 2 часа до исходного начала (10:00 того же дня) окно уже закрыто
	uc.timeProvider = fixedTimeProvider{now: time.Date(2026, 9, 7, 8, 0, 0, 0, time.UTC)}

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrModificationWindowClosed)
	assert.False(t, repo.rescheduled)
}

func TestExecute_OwnIntervalDoesNotConflict(t *testing.T) {
	booking := testBooking()
	repo := &fakeBookingRepo{
		booking:     booking,
		dayBookings: []*domain.Booking{booking},
	}
	uc := newTestUseCase(repo, &fakeCatalogRepo{
		trainer:      testTrainer(),
		workingHours: workingDay("09:00", "18:00"),
	})

	// Перенос в пределах собственного интервала: 10:00 -> 10:30 того же дня
	req := &Request{
		BookingID: 10,
		Date:      testDate,
		StartTime: types.TimeString("10:30"),
	}

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, repo.rescheduled)
}

func TestExecute_TargetSlotTaken(t *testing.T) {
	other := &domain.Booking{
		ID:              11,
		StartTime:       types.TimeString("14:00"),
		DurationMinutes: 60,
		Status:          domain.StatusConfirmed,
	}
	repo := &fakeBookingRepo{
		booking:     testBooking(),
		dayBookings: []*domain.Booking{other},
	}
	uc := newTestUseCase(repo, &fakeCatalogRepo{
		trainer:      testTrainer(),
		workingHours: workingDay("09:00", "18:00"),
	})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.False(t, repo.rescheduled)
}

func TestExecute_NonWorkingDay(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{booking: testBooking()}, &fakeCatalogRepo{
		trainer:         testTrainer(),
		workingHoursErr: catalogRepo.ErrWorkingHoursNotFound,
	})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrNonWorkingDay)
}

func TestExecute_PastDateRejected(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{booking: testBooking()}, &fakeCatalogRepo{trainer: testTrainer()})

	req := validRequest()
	req.Date = testNow.AddDate(0, 0, -1)

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 0, Date: testNewDate, StartTime: "10:00"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{BookingID: 10, Date: testNewDate, StartTime: "10:05x"})
	require.ErrorIs(t, err, ErrInvalidInput)
}
