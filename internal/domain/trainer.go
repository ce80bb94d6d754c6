package domain

import "time"

// Trainer представляет тренера. Сервис однопользовательский:
// в системе ровно один тренер.
type Trainer struct {
	ID                int64
	Name              string
	Timezone          string
	CancelCutoffHours int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Location возвращает часовой пояс тренера.
// Некорректное значение timezone - ошибка конфигурации, отлавливается на старте.
func (t *Trainer) Location() (*time.Location, error) {
	return time.LoadLocation(t.Timezone)
}
