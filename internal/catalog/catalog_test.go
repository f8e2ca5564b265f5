package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e6carspa/booking-platform/internal/domain"
	"github.com/e6carspa/booking-platform/pkg/types"
)

func TestCatalog_Services(t *testing.T) {
	c := NewWithSeed(1)

	services := c.Services()
	require.Len(t, services, 6)

	// Мутация копии не трогает каталог
	services[0].Price = 0
	again := c.Services()
	assert.Equal(t, 1499.0, again[0].Price)
}

func TestCatalog_ServiceByID(t *testing.T) {
	c := NewWithSeed(1)

	svc, err := c.ServiceByID("service-2")
	require.NoError(t, err)
	assert.Equal(t, "Engine Service", svc.Name)
	assert.Equal(t, 3999.0, svc.Price)

	_, err = c.ServiceByID("service-99")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestCatalog_MechanicByID(t *testing.T) {
	c := NewWithSeed(1)

	m, err := c.MechanicByID("mechanic-3")
	require.NoError(t, err)
	assert.Equal(t, "Priya Singh", m.Name)

	_, err = c.MechanicByID("mechanic-42")
	assert.ErrorIs(t, err, ErrMechanicNotFound)
}

func TestCatalog_AvailableSlots(t *testing.T) {
	c := NewWithSeed(1)
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	slots, err := c.AvailableSlots(date, "mechanic-1")
	require.NoError(t, err)
	require.Len(t, slots, 9)

	assert.Equal(t, "slot-9", slots[0].ID)
	assert.Equal(t, types.TimeString("09:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("10:00"), slots[0].EndTime)
	assert.Equal(t, types.TimeString("17:00"), slots[8].StartTime)
	assert.Equal(t, types.TimeString("18:00"), slots[8].EndTime)

	// Каждый слот ровно час, без переходов через полночь
	for _, slot := range slots {
		end, err := slot.StartTime.AddMinutes(domain.SlotDurationMinutes)
		require.NoError(t, err)
		assert.Equal(t, end, slot.EndTime)
	}
}

func TestCatalog_AvailableSlots_UnknownMechanic(t *testing.T) {
	c := NewWithSeed(1)

	_, err := c.AvailableSlots(time.Now(), "mechanic-42")
	assert.ErrorIs(t, err, ErrMechanicNotFound)
}

func TestCatalog_AvailableSlots_Deterministic(t *testing.T) {
	date := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	first, err := NewWithSeed(7).AvailableSlots(date, "mechanic-1")
	require.NoError(t, err)
	second, err := NewWithSeed(7).AvailableSlots(date, "mechanic-1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
