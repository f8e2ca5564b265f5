package add_selection_service

import "github.com/e6carspa/booking-platform/internal/service/selection/models"

type SelectionService interface {
	AddService(userID int64, serviceID string) (*models.SelectionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
