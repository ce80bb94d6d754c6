package reschedule_booking

import (
	"time"

	"github.com/avpetrov/PT-BookingService/pkg/types"
)

// Request модель запроса на перенос бронирования
type Request struct {
	BookingID int64            // ID бронирования
	Date      time.Time        // Новая дата (без времени)
	StartTime types.TimeString // Новое время начала
	Reason    string           // Причина переноса (для логов, может быть пустой)
}

// Response модель ответа с перенесённым бронированием
type Response struct {
	ID              int64            // ID бронирования (не меняется при переносе)
	SessionTypeID   int64            // ID услуги
	BookingDate     time.Time        // Новая дата
	StartTime       types.TimeString // Новое время начала
	DurationMinutes int              // Длительность из снапшота
	Status          string           // Статус (не меняется при переносе)

	SessionTypeName string  // Название услуги
	Price           float64 // Цена услуги
	Currency        string  // Валюта

	CreatedAt time.Time
	UpdatedAt time.Time
}
