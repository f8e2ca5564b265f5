package get_available_slots

import (
	"time"

	"github.com/e6carspa/booking-platform/internal/domain"
)

// SlotResponse временной слот с признаком доступности
type SlotResponse struct {
	ID          string `json:"id"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
}

// SlotListResponse слоты на дату
type SlotListResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// FromDomainSlots конвертирует слоты в HTTP response
func FromDomainSlots(date time.Time, slots []domain.TimeSlot) *SlotListResponse {
	out := make([]SlotResponse, 0, len(slots))
	for _, slot := range slots {
		out = append(out, SlotResponse{
			ID:          slot.ID,
			StartTime:   slot.StartTime.String(),
			EndTime:     slot.EndTime.String(),
			IsAvailable: slot.IsAvailable,
		})
	}
	return &SlotListResponse{
		Date:  date.Format(domain.DateFormat),
		Slots: out,
	}
}
