package remove_selection_service

import "github.com/e6carspa/booking-platform/internal/service/selection/models"

type SelectionService interface {
	RemoveService(userID int64, serviceID string) *models.SelectionResponse
}

type Logger interface {
	Info(format string, v ...interface{})
}
