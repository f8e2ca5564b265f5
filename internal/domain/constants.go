package domain

import "math"

// GSTRate applied on top of the services subtotal
const GSTRate = 0.06

// Business validation constants
const (
	MinPasswordLength = 6
	MaxNameLength     = 100
	MaxEmailLength    = 255
)

// Working hours for slot generation
const (
	WorkDayStartHour    = 9
	WorkDayEndHour      = 18
	SlotDurationMinutes = 60
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Round2 округляет денежную сумму до двух знаков (half away from zero)
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
