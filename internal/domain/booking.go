package domain

import (
	"time"

	"github.com/avpetrov/PT-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// CancellerRole указывает, кто отменил бронирование
type CancellerRole string

const (
	CancelledByClient  CancellerRole = "client"
	CancelledByTrainer CancellerRole = "trainer"
)

// Booking represents a training session booking.
// Данные услуги денормализованы: бронирование хранит снапшот SessionType
// на момент создания, поэтому последующие правки каталога не меняют историю.
type Booking struct {
	ID              int64
	SessionTypeID   int64
	BookingDate     time.Time // дата без времени
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus

	// Снапшот услуги
	SessionTypeName string
	Price           float64
	Currency        string

	CancellationReason *string
	CancelledBy        *CancellerRole
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlocking returns true if the booking occupies its time interval.
// Только подтверждённые бронирования блокируют слоты.
func (b *Booking) IsBlocking() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeModified returns true if the booking may still be cancelled or rescheduled.
// Из статусов cancelled и completed бронирование не выходит.
func (b *Booking) CanBeModified() bool {
	return b.Status == StatusConfirmed
}

// StartsAt возвращает момент начала тренировки в указанной локации.
// Арифметика поминутная, без какой-либо DST-логики.
func (b *Booking) StartsAt(loc *time.Location) time.Time {
	minutes, err := b.StartTime.Minutes()
	if err != nil {
		minutes = 0
	}
	y, m, d := b.BookingDate.Date()
	return time.Date(y, m, d, minutes/60, minutes%60, 0, 0, loc)
}

// EndsAt возвращает момент окончания тренировки: всегда StartsAt + DurationMinutes
func (b *Booking) EndsAt(loc *time.Location) time.Time {
	return b.StartsAt(loc).Add(time.Duration(b.DurationMinutes) * time.Minute)
}

// WithinModificationWindow проверяет правило cutoff: бронирование можно отменить
// или перенести, только пока до его начала остаётся больше cutoffHours часов.
func (b *Booking) WithinModificationWindow(cutoffHours int, now time.Time) bool {
	startsAt := b.StartsAt(now.Location())
	return startsAt.Sub(now) > time.Duration(cutoffHours)*time.Hour
}
