package domain

// Service represents a car service offering from the catalog
type Service struct {
	ID              string
	Name            string
	Description     string
	Price           float64
	DurationMinutes int
	Image           string
}

// ServiceSnapshot is the denormalized copy of a service captured at
// booking time. Later catalog price changes never affect stored bookings.
type ServiceSnapshot struct {
	ServiceID string
	Name      string
	Price     float64
}

// Snapshot captures the booking-relevant fields of a service
func (s Service) Snapshot() ServiceSnapshot {
	return ServiceSnapshot{
		ServiceID: s.ID,
		Name:      s.Name,
		Price:     s.Price,
	}
}
