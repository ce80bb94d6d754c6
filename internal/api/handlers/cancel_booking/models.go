package cancel_booking

import (
	"github.com/avpetrov/PT-BookingService/internal/domain"
	"github.com/avpetrov/PT-BookingService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model.
// Роль отменяющего не принимается из тела: публичный эндпоинт Mini App
// всегда отменяет от имени клиента, иначе проверку cutoff-окна можно
// обойти, передав "trainer". Отмена тренером остаётся операцией сервисного
// слоя без публичного HTTP-маршрута.
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest() *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		Reason:      r.Reason,
		CancelledBy: domain.CancelledByClient,
	}
}
