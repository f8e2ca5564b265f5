package submit_booking

import (
	"context"
	"time"

	"github.com/e6carspa/booking-platform/internal/domain"
)

// SelectionStore интерфейс хранилища черновиков выбора
type SelectionStore interface {
	Get(userID int64) *domain.Selection
	Clear(userID int64)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	CarByID(ctx context.Context, carID int64) (*domain.Car, int64, error)
}

// Catalog интерфейс статического справочника
type Catalog interface {
	MechanicByID(id string) (domain.Mechanic, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
