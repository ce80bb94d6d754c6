package domain

import "time"

// SessionType представляет услугу тренера (вид тренировки)
type SessionType struct {
	ID              int64
	Name            string
	DurationMinutes int
	Price           float64
	Currency        string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
