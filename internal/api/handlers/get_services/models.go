package get_services

import "github.com/e6carspa/booking-platform/internal/domain"

// ServiceResponse услуга каталога
type ServiceResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"` // minutes
	Image       string  `json:"image"`
}

// ServiceListResponse список услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainServices конвертирует услуги каталога в HTTP response
func FromDomainServices(services []domain.Service) *ServiceListResponse {
	out := make([]ServiceResponse, 0, len(services))
	for _, svc := range services {
		out = append(out, ServiceResponse{
			ID:          svc.ID,
			Name:        svc.Name,
			Description: svc.Description,
			Price:       svc.Price,
			Duration:    svc.DurationMinutes,
			Image:       svc.Image,
		})
	}
	return &ServiceListResponse{Services: out}
}
