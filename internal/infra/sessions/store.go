package sessions

import (
	"sync"
	"time"

	"github.com/e6carspa/booking-platform/internal/domain"
)

// Store потокобезопасное in-memory хранилище черновиков выбора,
// по одному на пользователя. Черновик живет между запросами до
// успешной отправки бронирования и не переживает рестарт процесса.
// Наружу всегда уходят глубокие копии, внутреннее состояние меняется
// только под мьютексом.
type Store struct {
	mu         sync.RWMutex
	selections map[int64]*domain.Selection
}

// New создает пустое хранилище
func New() *Store {
	return &Store{selections: make(map[int64]*domain.Selection)}
}

// get возвращает живой черновик пользователя, создавая пустой при отсутствии.
// Вызывается только под mu.
func (s *Store) get(userID int64) *domain.Selection {
	sel, ok := s.selections[userID]
	if !ok {
		sel = &domain.Selection{}
		s.selections[userID] = sel
	}
	return sel
}

// Get возвращает копию текущего черновика пользователя.
// Для пользователя без черновика возвращается пустой черновик.
func (s *Store) Get(userID int64) *domain.Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if sel, ok := s.selections[userID]; ok {
		return sel.Clone()
	}
	return &domain.Selection{}
}

// SetCar выбирает автомобиль и возвращает обновленный черновик
func (s *Store) SetCar(userID, carID int64) *domain.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel := s.get(userID)
	sel.SetCar(carID)
	return sel.Clone()
}

// AddService добавляет услугу, повторное добавление не дублирует
func (s *Store) AddService(userID int64, svc domain.ServiceSnapshot) *domain.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel := s.get(userID)
	sel.AddService(svc)
	return sel.Clone()
}

// RemoveService убирает услугу из черновика
func (s *Store) RemoveService(userID int64, serviceID string) *domain.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel := s.get(userID)
	sel.RemoveService(serviceID)
	return sel.Clone()
}

// SetDate выбирает дату, смена даты сбрасывает устаревший слот
func (s *Store) SetDate(userID int64, date time.Time) *domain.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel := s.get(userID)
	sel.SetDate(date)
	return sel.Clone()
}

// SetTimeSlot выбирает временной слот
func (s *Store) SetTimeSlot(userID int64, slot domain.TimeSlot) *domain.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel := s.get(userID)
	sel.SetTimeSlot(slot)
	return sel.Clone()
}

// SetMechanic выбирает механика
func (s *Store) SetMechanic(userID int64, mechanicID string) *domain.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel := s.get(userID)
	sel.SetMechanic(mechanicID)
	return sel.Clone()
}

// Clear сбрасывает черновик пользователя в пустое состояние
func (s *Store) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.selections, userID)
}
