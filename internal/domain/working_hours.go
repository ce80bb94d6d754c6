package domain

import (
	"fmt"
	"time"

	"github.com/avpetrov/PT-BookingService/pkg/types"
)

// WorkingHours represents the trainer's recurring schedule for one weekday.
// День недели, отсутствующий в таблице, - полностью нерабочий.
// На один день недели может быть не больше одной строки.
type WorkingHours struct {
	ID        int64
	DayOfWeek int // 0 = Sunday, 6 = Saturday
	StartTime types.TimeString
	EndTime   types.TimeString
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate проверяет корректность строки расписания.
// Некорректное расписание - ошибка конфигурации, сервис не должен стартовать с ней.
func (wh *WorkingHours) Validate() error {
	if wh.DayOfWeek < 0 || wh.DayOfWeek > 6 {
		return fmt.Errorf("%w: day of week %d out of range [0..6]", ErrInvalidWorkingHours, wh.DayOfWeek)
	}
	if err := wh.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidWorkingHours, err)
	}
	if err := wh.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: end time: %v", ErrInvalidWorkingHours, err)
	}
	if !wh.StartTime.IsBefore(wh.EndTime) {
		return fmt.Errorf("%w: start %s is not before end %s", ErrInvalidWorkingHours, wh.StartTime, wh.EndTime)
	}
	return nil
}
