package get_selection

import "github.com/e6carspa/booking-platform/internal/service/selection/models"

type SelectionService interface {
	Get(userID int64) *models.SelectionResponse
}

type Logger interface {
	Info(format string, v ...interface{})
}
