package models

import (
	"github.com/avpetrov/PT-BookingService/internal/domain"
)

// Response модели

// TrainerResponse ответ с профилем тренера
type TrainerResponse struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Timezone          string `json:"timezone"`
	CancelCutoffHours int    `json:"cancelCutoffHours"`
}

// SessionTypeResponse ответ с данными услуги
type SessionTypeResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
	Currency        string  `json:"currency"`
}

// SessionTypeListResponse ответ со списком услуг
type SessionTypeListResponse struct {
	SessionTypes []SessionTypeResponse `json:"sessionTypes"`
}

// WorkingHoursResponse ответ с рабочими часами на день недели
type WorkingHoursResponse struct {
	DayOfWeek int    `json:"dayOfWeek"` // 0 = воскресенье ... 6 = суббота
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "18:00"
}

// WorkingHoursListResponse ответ с расписанием на неделю
type WorkingHoursListResponse struct {
	WorkingHours []WorkingHoursResponse `json:"workingHours"`
}

// Методы конвертации

// FromDomainTrainer конвертирует domain модель в DTO
func FromDomainTrainer(t *domain.Trainer) *TrainerResponse {
	if t == nil {
		return nil
	}

	return &TrainerResponse{
		ID:                t.ID,
		Name:              t.Name,
		Timezone:          t.Timezone,
		CancelCutoffHours: t.CancelCutoffHours,
	}
}

// FromDomainSessionTypes конвертирует список domain моделей в DTO
func FromDomainSessionTypes(sessionTypes []*domain.SessionType) *SessionTypeListResponse {
	resp := &SessionTypeListResponse{
		SessionTypes: make([]SessionTypeResponse, 0, len(sessionTypes)),
	}

	for _, st := range sessionTypes {
		if st == nil {
			continue
		}
		resp.SessionTypes = append(resp.SessionTypes, SessionTypeResponse{
			ID:              st.ID,
			Name:            st.Name,
			DurationMinutes: st.DurationMinutes,
			Price:           st.Price,
			Currency:        st.Currency,
		})
	}

	return resp
}

// FromDomainWorkingHours конвертирует список domain моделей в DTO
func FromDomainWorkingHours(workingHours []*domain.WorkingHours) *WorkingHoursListResponse {
	resp := &WorkingHoursListResponse{
		WorkingHours: make([]WorkingHoursResponse, 0, len(workingHours)),
	}

	for _, wh := range workingHours {
		if wh == nil {
			continue
		}
		resp.WorkingHours = append(resp.WorkingHours, WorkingHoursResponse{
			DayOfWeek: wh.DayOfWeek,
			StartTime: wh.StartTime.String(),
			EndTime:   wh.EndTime.String(),
		})
	}

	return resp
}
