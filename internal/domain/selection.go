package domain

import "time"

// Amounts holds the derived money totals of a selection or booking
type Amounts struct {
	Total float64
	GST   float64
	Final float64
}

// Selection is the in-progress draft a customer builds before
// submitting a booking: a car, a set of services, a date, a time slot
// and optionally a mechanic. Totals are always derived from the
// current service set, never stored.
type Selection struct {
	CarID      *int64
	Services   []ServiceSnapshot
	Date       *time.Time
	TimeSlot   *TimeSlot
	MechanicID *string
}

// SetCar picks the car the services will be performed on
func (s *Selection) SetCar(carID int64) {
	s.CarID = &carID
}

// AddService adds a service to the selection. Adding a service that is
// already present is a no-op, so totals never double-count.
func (s *Selection) AddService(svc ServiceSnapshot) {
	for _, existing := range s.Services {
		if existing.ServiceID == svc.ServiceID {
			return
		}
	}
	s.Services = append(s.Services, svc)
}

// RemoveService removes a service by id. Removing a service that is
// not selected is a no-op.
func (s *Selection) RemoveService(serviceID string) {
	for i, existing := range s.Services {
		if existing.ServiceID == serviceID {
			s.Services = append(s.Services[:i], s.Services[i+1:]...)
			return
		}
	}
}

// HasService returns true if the service is already selected
func (s *Selection) HasService(serviceID string) bool {
	for _, existing := range s.Services {
		if existing.ServiceID == serviceID {
			return true
		}
	}
	return false
}

// SetDate picks the booking date. Switching to a different calendar
// day drops the chosen time slot, since slot availability is generated
// per date and a slot from another day would be stale.
func (s *Selection) SetDate(date time.Time) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	if s.Date != nil && !s.Date.Equal(day) {
		s.TimeSlot = nil
	}
	s.Date = &day
}

// SetTimeSlot picks the time slot within the chosen date
func (s *Selection) SetTimeSlot(slot TimeSlot) {
	s.TimeSlot = &slot
}

// SetMechanic picks a preferred mechanic
func (s *Selection) SetMechanic(mechanicID string) {
	s.MechanicID = &mechanicID
}

// Totals derives the money amounts from the selected services:
// subtotal, GST on top of it and the final payable amount.
func (s *Selection) Totals() Amounts {
	var total float64
	for _, svc := range s.Services {
		total += svc.Price
	}
	total = Round2(total)
	gst := Round2(total * GSTRate)
	return Amounts{
		Total: total,
		GST:   gst,
		Final: Round2(total + gst),
	}
}

// IsComplete reports whether the selection has everything a booking
// requires: a car, at least one service, a date and a time slot.
// The mechanic is optional.
func (s *Selection) IsComplete() bool {
	return s.CarID != nil &&
		len(s.Services) > 0 &&
		s.Date != nil &&
		s.TimeSlot != nil
}

// Clear resets the selection to its empty state
func (s *Selection) Clear() {
	*s = Selection{}
}

// Clone returns a deep copy of the selection
func (s *Selection) Clone() *Selection {
	out := &Selection{}
	if s.CarID != nil {
		v := *s.CarID
		out.CarID = &v
	}
	if len(s.Services) > 0 {
		out.Services = make([]ServiceSnapshot, len(s.Services))
		copy(out.Services, s.Services)
	}
	if s.Date != nil {
		v := *s.Date
		out.Date = &v
	}
	if s.TimeSlot != nil {
		v := *s.TimeSlot
		out.TimeSlot = &v
	}
	if s.MechanicID != nil {
		v := *s.MechanicID
		out.MechanicID = &v
	}
	return out
}
