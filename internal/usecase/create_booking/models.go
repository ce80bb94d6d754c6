package create_booking

import (
	"time"

	"github.com/avpetrov/PT-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	SessionTypeID int64            // ID услуги
	Date          time.Time        // Дата бронирования (без времени)
	StartTime     types.TimeString // Время начала слота (например, "10:00")
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	SessionTypeID   int64            // ID услуги
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус бронирования

	// Снапшот услуги
	SessionTypeName string  // Название услуги
	Price           float64 // Цена услуги
	Currency        string  // Валюта

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
