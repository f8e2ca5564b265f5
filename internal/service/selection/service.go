package selection

import (
	"fmt"
	"time"

	"github.com/e6carspa/booking-platform/internal/domain"
	"github.com/e6carspa/booking-platform/internal/service/selection/models"
	"github.com/e6carspa/booking-platform/pkg/types"
)

// Service сервис черновика выбора. Проверяет ссылки на каталог
// и применяет изменения к хранилищу черновиков.
type Service struct {
	store   SelectionStore
	catalog Catalog
	logger  Logger
}

// NewService создает сервис черновиков
func NewService(store SelectionStore, catalog Catalog, logger Logger) *Service {
	return &Service{store: store, catalog: catalog, logger: logger}
}

// Get возвращает текущий черновик пользователя
func (s *Service) Get(userID int64) *models.SelectionResponse {
	return models.FromDomainSelection(s.store.Get(userID))
}

// Update применяет частичное обновление черновика.
// Сначала валидируются все переданные поля, потом применяются:
// при ошибке черновик не меняется вовсе.
func (s *Service) Update(userID int64, req *models.UpdateRequest) (*models.SelectionResponse, error) {
	var (
		date time.Time
		slot *domain.TimeSlot
		err  error
	)

	if req.CarID != nil && *req.CarID <= 0 {
		return nil, fmt.Errorf("%w: carId must be positive", ErrInvalidInput)
	}

	if req.Date != nil {
		date, err = time.Parse(domain.DateFormat, *req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
		}
	}

	if req.TimeSlot != nil {
		slot, err = toDomainSlot(req.TimeSlot)
		if err != nil {
			return nil, err
		}
	}

	if req.MechanicID != nil {
		if _, err := s.catalog.MechanicByID(*req.MechanicID); err != nil {
			s.logger.Warn("Update: user=%d picked unknown mechanic %s", userID, *req.MechanicID)
			return nil, ErrMechanicNotFound
		}
	}

	var result *domain.Selection
	if req.CarID != nil {
		result = s.store.SetCar(userID, *req.CarID)
	}
	if req.Date != nil {
		result = s.store.SetDate(userID, date)
	}
	if slot != nil {
		result = s.store.SetTimeSlot(userID, *slot)
	}
	if req.MechanicID != nil {
		result = s.store.SetMechanic(userID, *req.MechanicID)
	}
	if result == nil {
		result = s.store.Get(userID)
	}

	s.logger.Info("Update: user=%d selection updated", userID)
	return models.FromDomainSelection(result), nil
}

// AddService добавляет услугу каталога в черновик.
// Цена и название замораживаются в снапшоте на момент добавления.
func (s *Service) AddService(userID int64, serviceID string) (*models.SelectionResponse, error) {
	svc, err := s.catalog.ServiceByID(serviceID)
	if err != nil {
		s.logger.Warn("AddService: user=%d unknown service %s", userID, serviceID)
		return nil, ErrServiceNotFound
	}

	result := s.store.AddService(userID, svc.Snapshot())
	s.logger.Info("AddService: user=%d added %s", userID, serviceID)
	return models.FromDomainSelection(result), nil
}

// RemoveService убирает услугу из черновика.
// Удаление невыбранной услуги не ошибка.
func (s *Service) RemoveService(userID int64, serviceID string) *models.SelectionResponse {
	result := s.store.RemoveService(userID, serviceID)
	s.logger.Info("RemoveService: user=%d removed %s", userID, serviceID)
	return models.FromDomainSelection(result)
}

// Clear сбрасывает черновик
func (s *Service) Clear(userID int64) {
	s.store.Clear(userID)
	s.logger.Info("Clear: user=%d selection cleared", userID)
}

func toDomainSlot(req *models.TimeSlotRequest) (*domain.TimeSlot, error) {
	if req.ID == "" {
		return nil, fmt.Errorf("%w: timeSlot.id is required", ErrInvalidInput)
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: timeSlot.startTime must be HH:MM", ErrInvalidInput)
	}
	end, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: timeSlot.endTime must be HH:MM", ErrInvalidInput)
	}
	if !end.IsAfter(start) {
		return nil, fmt.Errorf("%w: timeSlot must end after it starts", ErrInvalidInput)
	}

	return &domain.TimeSlot{
		ID:          req.ID,
		StartTime:   start,
		EndTime:     end,
		IsAvailable: true,
	}, nil
}
