package domain

import (
	"time"

	"github.com/e6carspa/booking-platform/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
)

// Valid returns true for a known status
func (s BookingStatus) Valid() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCompleted
}

// rank позиция статуса в линейном жизненном цикле
func (s BookingStatus) rank() int {
	switch s {
	case StatusPending:
		return 0
	case StatusConfirmed:
		return 1
	case StatusCompleted:
		return 2
	default:
		return -1
	}
}

// Booking represents a submitted service booking
type Booking struct {
	ID          int64
	UserID      int64
	CarID       int64
	Services    []ServiceSnapshot
	BookingDate time.Time
	SlotStart   types.TimeString
	SlotEnd     types.TimeString
	MechanicID  *string
	Status      BookingStatus

	// Totals are frozen at submission time
	TotalAmount float64
	GSTAmount   float64
	FinalAmount float64

	// Denormalized car data for history
	CarBrand string
	CarModel string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanTransitionTo reports whether moving to target is a single forward
// step of the pending -> confirmed -> completed lifecycle. Skipping a
// stage or moving backwards is never allowed.
func (b *Booking) CanTransitionTo(target BookingStatus) bool {
	return target.rank() == b.Status.rank()+1
}

// IsOwnedBy returns true if the booking belongs to the given user
func (b *Booking) IsOwnedBy(userID int64) bool {
	return b.UserID == userID
}
