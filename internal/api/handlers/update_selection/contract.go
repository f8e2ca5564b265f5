package update_selection

import "github.com/e6carspa/booking-platform/internal/service/selection/models"

type SelectionService interface {
	Update(userID int64, req *models.UpdateRequest) (*models.SelectionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
