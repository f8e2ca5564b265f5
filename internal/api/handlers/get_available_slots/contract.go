package get_available_slots

import (
	"time"

	"github.com/e6carspa/booking-platform/internal/domain"
)

type Catalog interface {
	AvailableSlots(date time.Time, mechanicID string) ([]domain.TimeSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
