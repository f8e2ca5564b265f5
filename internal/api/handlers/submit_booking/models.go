package submit_booking

import (
	"time"

	"github.com/e6carspa/booking-platform/internal/domain"
	submitBooking "github.com/e6carspa/booking-platform/internal/usecase/submit_booking"
)

// BookedServiceResponse снапшот услуги в составе бронирования
type BookedServiceResponse struct {
	ServiceID string  `json:"serviceId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64                   `json:"id"`
	UserID      int64                   `json:"userId"`
	CarID       int64                   `json:"carId"`
	Services    []BookedServiceResponse `json:"services"`
	BookingDate string                  `json:"bookingDate"`
	SlotStart   string                  `json:"slotStart"`
	SlotEnd     string                  `json:"slotEnd"`
	MechanicID  *string                 `json:"mechanicId,omitempty"`
	Status      string                  `json:"status"`
	TotalAmount float64                 `json:"totalAmount"`
	GSTAmount   float64                 `json:"gstAmount"`
	FinalAmount float64                 `json:"finalAmount"`
	CarBrand    string                  `json:"carBrand"`
	CarModel    string                  `json:"carModel"`
	CreatedAt   string                  `json:"createdAt"`
	UpdatedAt   string                  `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *BookingResponse {
	services := make([]BookedServiceResponse, 0, len(resp.Services))
	for _, svc := range resp.Services {
		services = append(services, BookedServiceResponse{
			ServiceID: svc.ServiceID,
			Name:      svc.Name,
			Price:     svc.Price,
		})
	}
	return &BookingResponse{
		ID:          resp.ID,
		UserID:      resp.UserID,
		CarID:       resp.CarID,
		Services:    services,
		BookingDate: resp.BookingDate.Format(domain.DateFormat),
		SlotStart:   resp.SlotStart.String(),
		SlotEnd:     resp.SlotEnd.String(),
		MechanicID:  resp.MechanicID,
		Status:      resp.Status,
		TotalAmount: resp.TotalAmount,
		GSTAmount:   resp.GSTAmount,
		FinalAmount: resp.FinalAmount,
		CarBrand:    resp.CarBrand,
		CarModel:    resp.CarModel,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
