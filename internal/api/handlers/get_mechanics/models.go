package get_mechanics

import "github.com/e6carspa/booking-platform/internal/domain"

// MechanicResponse механик каталога
type MechanicResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Specialization string  `json:"specialization"`
	Rating         float64 `json:"rating"`
	Image          string  `json:"image"`
}

// MechanicListResponse список механиков
type MechanicListResponse struct {
	Mechanics []MechanicResponse `json:"mechanics"`
}

// FromDomainMechanics конвертирует механиков каталога в HTTP response
func FromDomainMechanics(mechanics []domain.Mechanic) *MechanicListResponse {
	out := make([]MechanicResponse, 0, len(mechanics))
	for _, m := range mechanics {
		out = append(out, MechanicResponse{
			ID:             m.ID,
			Name:           m.Name,
			Specialization: m.Specialization,
			Rating:         m.Rating,
			Image:          m.Image,
		})
	}
	return &MechanicListResponse{Mechanics: out}
}
