package get_available_slots

import (
	"time"

	"github.com/avpetrov/PT-BookingService/internal/domain"
)

// Request модель запроса на получение слотов
type Request struct {
	SessionTypeID int64     // ID услуги
	Date          time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком слотов на дату
type Response struct {
	Date            time.Time         // Дата, на которую запрашивались слоты
	SessionTypeID   int64             // ID услуги
	DurationMinutes int               // Длительность услуги в минутах
	Slots           []domain.TimeSlot // Все слоты сетки с признаком доступности
}
