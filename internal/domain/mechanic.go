package domain

import "github.com/e6carspa/booking-platform/pkg/types"

// Mechanic represents a mechanic from the static catalog
type Mechanic struct {
	ID             string
	Name           string
	Specialization string
	Rating         float64
	Image          string
}

// TimeSlot represents an hourly slot in a mechanic's working day
type TimeSlot struct {
	ID          string
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool
}
