package domain

import "errors"

// Slot grid constants
const (
	// SlotStepMinutes фиксированный шаг сетки слотов.
	// Кандидаты генерируются каждые 30 минут независимо от длительности услуги.
	SlotStepMinutes = 30
)

// Business validation constants
const (
	MinSessionDurationMinutes   = 5
	MaxSessionDurationMinutes   = 480 // 8 hours
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

var (
	// ErrInvalidWorkingHours возвращается при некорректной строке расписания
	ErrInvalidWorkingHours = errors.New("domain: invalid working hours")
)
