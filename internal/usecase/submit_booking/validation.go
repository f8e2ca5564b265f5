package submit_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/e6carspa/booking-platform/internal/domain"
)

// validateSelection проверяет полноту черновика.
// Обязательны автомобиль, хотя бы одна услуга, дата и слот;
// механик опционален.
func validateSelection(sel *domain.Selection) error {
	missing := make([]string, 0, 4)
	if sel.CarID == nil {
		missing = append(missing, "car")
	}
	if len(sel.Services) == 0 {
		missing = append(missing, "services")
	}
	if sel.Date == nil {
		missing = append(missing, "date")
	}
	if sel.TimeSlot == nil {
		missing = append(missing, "timeSlot")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrIncompleteSelection, strings.Join(missing, ", "))
	}
	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(date, now time.Time) error {
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}
	return nil
}
