package sessions

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e6carspa/booking-platform/internal/domain"
)

func TestStore_GetUnknownUser(t *testing.T) {
	s := New()

	sel := s.Get(100)
	require.NotNil(t, sel)
	assert.False(t, sel.IsComplete())
	assert.Empty(t, sel.Services)
}

func TestStore_AccumulatesAcrossCalls(t *testing.T) {
	s := New()

	s.SetCar(1, 7)
	s.AddService(1, domain.ServiceSnapshot{ServiceID: "service-1", Price: 1499})
	s.SetDate(1, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC))
	sel := s.SetTimeSlot(1, domain.TimeSlot{ID: "slot-9", StartTime: "09:00", EndTime: "10:00", IsAvailable: true})

	assert.True(t, sel.IsComplete())
	assert.Equal(t, int64(7), *sel.CarID)
}

func TestStore_UsersAreIsolated(t *testing.T) {
	s := New()

	s.AddService(1, domain.ServiceSnapshot{ServiceID: "service-1", Price: 1499})
	s.AddService(2, domain.ServiceSnapshot{ServiceID: "service-2", Price: 3999})

	assert.Equal(t, 1499.0, s.Get(1).Totals().Total)
	assert.Equal(t, 3999.0, s.Get(2).Totals().Total)
}

func TestStore_ReturnedCopyIsDetached(t *testing.T) {
	s := New()
	s.AddService(1, domain.ServiceSnapshot{ServiceID: "service-1", Price: 1499})

	got := s.Get(1)
	got.AddService(domain.ServiceSnapshot{ServiceID: "service-2", Price: 3999})
	got.SetCar(99)

	fresh := s.Get(1)
	assert.Len(t, fresh.Services, 1)
	assert.Nil(t, fresh.CarID)
}

func TestStore_Clear(t *testing.T) {
	s := New()
	s.SetCar(1, 7)
	s.AddService(1, domain.ServiceSnapshot{ServiceID: "service-1", Price: 1499})

	s.Clear(1)

	sel := s.Get(1)
	assert.Nil(t, sel.CarID)
	assert.Empty(t, sel.Services)
}

func TestStore_ConcurrentAccess(t *testing.T) {
	s := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			userID := int64(n % 5)
			s.SetCar(userID, int64(n))
			s.AddService(userID, domain.ServiceSnapshot{ServiceID: "service-1", Price: 1499})
			_ = s.Get(userID)
		}(i)
	}
	wg.Wait()

	for userID := int64(0); userID < 5; userID++ {
		sel := s.Get(userID)
		require.Len(t, sel.Services, 1)
	}
}
