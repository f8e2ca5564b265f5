package get_services

import "github.com/e6carspa/booking-platform/internal/domain"

type Catalog interface {
	Services() []domain.Service
}

type Logger interface {
	Info(format string, v ...interface{})
}
