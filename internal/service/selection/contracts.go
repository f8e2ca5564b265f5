package selection

import (
	"time"

	"github.com/e6carspa/booking-platform/internal/domain"
)

// SelectionStore интерфейс хранилища черновиков выбора
type SelectionStore interface {
	Get(userID int64) *domain.Selection
	SetCar(userID, carID int64) *domain.Selection
	AddService(userID int64, svc domain.ServiceSnapshot) *domain.Selection
	RemoveService(userID int64, serviceID string) *domain.Selection
	SetDate(userID int64, date time.Time) *domain.Selection
	SetTimeSlot(userID int64, slot domain.TimeSlot) *domain.Selection
	SetMechanic(userID int64, mechanicID string) *domain.Selection
	Clear(userID int64)
}

// Catalog интерфейс статического справочника
type Catalog interface {
	ServiceByID(id string) (domain.Service, error)
	MechanicByID(id string) (domain.Mechanic, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
