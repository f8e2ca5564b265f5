package get_mechanics

import "github.com/e6carspa/booking-platform/internal/domain"

type Catalog interface {
	Mechanics() []domain.Mechanic
}

type Logger interface {
	Info(format string, v ...interface{})
}
