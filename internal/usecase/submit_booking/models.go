package submit_booking

import (
	"time"

	"github.com/e6carspa/booking-platform/internal/domain"
	"github.com/e6carspa/booking-platform/pkg/types"
)

// Request запрос на оформление бронирования из текущего черновика
type Request struct {
	UserID int64
}

// BookedService снапшот услуги в составе созданного бронирования
type BookedService struct {
	ServiceID string
	Name      string
	Price     float64
}

// Response созданное бронирование
type Response struct {
	ID          int64
	UserID      int64
	CarID       int64
	Services    []BookedService
	BookingDate time.Time
	SlotStart   types.TimeString
	SlotEnd     types.TimeString
	MechanicID  *string
	Status      string

	TotalAmount float64
	GSTAmount   float64
	FinalAmount float64

	CarBrand string
	CarModel string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func toResponse(b *domain.Booking) *Response {
	services := make([]BookedService, 0, len(b.Services))
	for _, svc := range b.Services {
		services = append(services, BookedService{
			ServiceID: svc.ServiceID,
			Name:      svc.Name,
			Price:     svc.Price,
		})
	}
	return &Response{
		ID:          b.ID,
		UserID:      b.UserID,
		CarID:       b.CarID,
		Services:    services,
		BookingDate: b.BookingDate,
		SlotStart:   b.SlotStart,
		SlotEnd:     b.SlotEnd,
		MechanicID:  b.MechanicID,
		Status:      string(b.Status),
		TotalAmount: b.TotalAmount,
		GSTAmount:   b.GSTAmount,
		FinalAmount: b.FinalAmount,
		CarBrand:    b.CarBrand,
		CarModel:    b.CarModel,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}
