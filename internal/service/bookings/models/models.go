package models

import (
	"time"

	"github.com/e6carspa/booking-platform/internal/domain"
)

// BookedServiceResponse снапшот услуги в составе бронирования
type BookedServiceResponse struct {
	ServiceID string  `json:"serviceId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64                   `json:"id"`
	UserID      int64                   `json:"userId"`
	CarID       int64                   `json:"carId"`
	Services    []BookedServiceResponse `json:"services"`
	BookingDate string                  `json:"bookingDate"` // "2026-09-10"
	SlotStart   string                  `json:"slotStart"`   // "10:00"
	SlotEnd     string                  `json:"slotEnd"`     // "11:00"
	MechanicID  *string                 `json:"mechanicId,omitempty"`
	Status      string                  `json:"status"`

	TotalAmount float64 `json:"totalAmount"`
	GSTAmount   float64 `json:"gstAmount"`
	FinalAmount float64 `json:"finalAmount"`

	CarBrand string `json:"carBrand"`
	CarModel string `json:"carModel"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking конвертирует domain.Booking в response-модель
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	services := make([]BookedServiceResponse, 0, len(b.Services))
	for _, svc := range b.Services {
		services = append(services, BookedServiceResponse{
			ServiceID: svc.ServiceID,
			Name:      svc.Name,
			Price:     svc.Price,
		})
	}

	return &BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		CarID:       b.CarID,
		Services:    services,
		BookingDate: b.BookingDate.Format(domain.DateFormat),
		SlotStart:   b.SlotStart.String(),
		SlotEnd:     b.SlotEnd.String(),
		MechanicID:  b.MechanicID,
		Status:      string(b.Status),
		TotalAmount: b.TotalAmount,
		GSTAmount:   b.GSTAmount,
		FinalAmount: b.FinalAmount,
		CarBrand:    b.CarBrand,
		CarModel:    b.CarModel,
		CreatedAt:   b.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   b.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// FromDomainBookings конвертирует список бронирований
func FromDomainBookings(bookings []*domain.Booking) *BookingListResponse {
	out := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: out, Total: len(out)}
}
