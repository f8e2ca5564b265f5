package models

import (
	"github.com/e6carspa/booking-platform/internal/domain"
)

// SelectedService услуга в черновике
type SelectedService struct {
	ServiceID string  `json:"serviceId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

// TimeSlotResponse выбранный временной слот
type TimeSlotResponse struct {
	ID          string `json:"id"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
}

// TotalsResponse производные суммы черновика
type TotalsResponse struct {
	Total float64 `json:"total"`
	GST   float64 `json:"gst"`
	Final float64 `json:"final"`
}

// SelectionResponse текущее состояние черновика с производными суммами
type SelectionResponse struct {
	CarID      *int64            `json:"carId,omitempty"`
	Services   []SelectedService `json:"services"`
	Date       *string           `json:"date,omitempty"`
	TimeSlot   *TimeSlotResponse `json:"timeSlot,omitempty"`
	MechanicID *string           `json:"mechanicId,omitempty"`
	Totals     TotalsResponse    `json:"totals"`
	IsComplete bool              `json:"isComplete"`
}

// UpdateRequest частичное обновление черновика: применяются только
// переданные поля
type UpdateRequest struct {
	CarID      *int64           `json:"carId,omitempty"`
	Date       *string          `json:"date,omitempty"` // "2026-09-10"
	TimeSlot   *TimeSlotRequest `json:"timeSlot,omitempty"`
	MechanicID *string          `json:"mechanicId,omitempty"`
}

// TimeSlotRequest слот в запросе обновления
type TimeSlotRequest struct {
	ID        string `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// FromDomainSelection конвертирует domain.Selection в response-модель
func FromDomainSelection(sel *domain.Selection) *SelectionResponse {
	services := make([]SelectedService, 0, len(sel.Services))
	for _, svc := range sel.Services {
		services = append(services, SelectedService{
			ServiceID: svc.ServiceID,
			Name:      svc.Name,
			Price:     svc.Price,
		})
	}

	resp := &SelectionResponse{
		CarID:      sel.CarID,
		Services:   services,
		MechanicID: sel.MechanicID,
		IsComplete: sel.IsComplete(),
	}

	if sel.Date != nil {
		date := sel.Date.Format(domain.DateFormat)
		resp.Date = &date
	}
	if sel.TimeSlot != nil {
		resp.TimeSlot = &TimeSlotResponse{
			ID:          sel.TimeSlot.ID,
			StartTime:   sel.TimeSlot.StartTime.String(),
			EndTime:     sel.TimeSlot.EndTime.String(),
			IsAvailable: sel.TimeSlot.IsAvailable,
		}
	}

	totals := sel.Totals()
	resp.Totals = TotalsResponse{Total: totals.Total, GST: totals.GST, Final: totals.Final}
	return resp
}
