package catalog

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/e6carspa/booking-platform/internal/domain"
	"github.com/e6carspa/booking-platform/pkg/types"
)

// Catalog отдает статический справочник услуг и механиков и генерирует
// слоты доступности. Справочник неизменяемый, наружу всегда уходят копии.
type Catalog struct {
	services  []domain.Service
	mechanics []domain.Mechanic

	mu  sync.Mutex
	rng *rand.Rand
}

// New создает каталог со случайной доступностью слотов
func New() *Catalog {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed создает каталог с детерминированной генерацией слотов.
// Используется в тестах.
func NewWithSeed(seed int64) *Catalog {
	return &Catalog{
		services:  defaultServices,
		mechanics: defaultMechanics,
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Services возвращает все услуги каталога
func (c *Catalog) Services() []domain.Service {
	out := make([]domain.Service, len(c.services))
	copy(out, c.services)
	return out
}

// ServiceByID находит услугу по идентификатору
func (c *Catalog) ServiceByID(id string) (domain.Service, error) {
	for _, svc := range c.services {
		if svc.ID == id {
			return svc, nil
		}
	}
	return domain.Service{}, fmt.Errorf("%w: %s", ErrServiceNotFound, id)
}

// Mechanics возвращает всех механиков каталога
func (c *Catalog) Mechanics() []domain.Mechanic {
	out := make([]domain.Mechanic, len(c.mechanics))
	copy(out, c.mechanics)
	return out
}

// MechanicByID находит механика по идентификатору
func (c *Catalog) MechanicByID(id string) (domain.Mechanic, error) {
	for _, m := range c.mechanics {
		if m.ID == id {
			return m, nil
		}
	}
	return domain.Mechanic{}, fmt.Errorf("%w: %s", ErrMechanicNotFound, id)
}

// AvailableSlots генерирует почасовые слоты рабочего дня механика
// на указанную дату: с 09:00 до 18:00, доступность псевдослучайная.
// Дата и механик на генерацию не влияют, но механик должен существовать.
func (c *Catalog) AvailableSlots(date time.Time, mechanicID string) ([]domain.TimeSlot, error) {
	if _, err := c.MechanicByID(mechanicID); err != nil {
		return nil, fmt.Errorf("AvailableSlots - find mechanic: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	slots := make([]domain.TimeSlot, 0, domain.WorkDayEndHour-domain.WorkDayStartHour)
	for hour := domain.WorkDayStartHour; hour < domain.WorkDayEndHour; hour++ {
		slots = append(slots, domain.TimeSlot{
			ID:          fmt.Sprintf("slot-%d", hour),
			StartTime:   types.TimeString(fmt.Sprintf("%02d:00", hour)),
			EndTime:     types.TimeString(fmt.Sprintf("%02d:00", hour+1)),
			IsAvailable: c.rng.Float64() > 0.3,
		})
	}
	return slots, nil
}
