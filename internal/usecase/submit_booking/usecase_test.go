package submit_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e6carspa/booking-platform/internal/domain"
	userRepo "github.com/e6carspa/booking-platform/internal/infra/storage/user"
	"github.com/e6carspa/booking-platform/pkg/ptr"
)

type mockSelections struct {
	selections map[int64]*domain.Selection
	cleared    []int64
}

func (m *mockSelections) Get(userID int64) *domain.Selection {
	if sel, ok := m.selections[userID]; ok {
		return sel.Clone()
	}
	return &domain.Selection{}
}

func (m *mockSelections) Clear(userID int64) {
	m.cleared = append(m.cleared, userID)
	delete(m.selections, userID)
}

type mockBookingRepo struct {
	created *domain.Booking
	err     error
}

func (m *mockBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if m.err != nil {
		return nil, m.err
	}
	booking.ID = 101
	booking.CreatedAt = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	booking.UpdatedAt = booking.CreatedAt
	m.created = booking
	return booking, nil
}

type mockUserRepo struct {
	cars map[int64]struct {
		car     domain.Car
		ownerID int64
	}
}

func (m *mockUserRepo) CarByID(_ context.Context, carID int64) (*domain.Car, int64, error) {
	entry, ok := m.cars[carID]
	if !ok {
		return nil, 0, userRepo.ErrCarNotFound
	}
	car := entry.car
	return &car, entry.ownerID, nil
}

type mockCatalog struct{}

func (mockCatalog) MechanicByID(id string) (domain.Mechanic, error) {
	if id == "mechanic-1" {
		return domain.Mechanic{ID: id, Name: "Rajesh Kumar"}, nil
	}
	return domain.Mechanic{}, errors.New("mechanic not found")
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func completeSelection() *domain.Selection {
	sel := &domain.Selection{}
	sel.SetCar(7)
	sel.AddService(domain.ServiceSnapshot{ServiceID: "service-1", Name: "Car Wash & Polish", Price: 1499})
	sel.AddService(domain.ServiceSnapshot{ServiceID: "service-2", Name: "Engine Service", Price: 3999})
	sel.SetDate(time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC))
	sel.SetTimeSlot(domain.TimeSlot{ID: "slot-10", StartTime: "10:00", EndTime: "11:00", IsAvailable: true})
	return sel
}

type fixture struct {
	uc         *UseCase
	selections *mockSelections
	bookings   *mockBookingRepo
}

func newFixture(sel *domain.Selection) *fixture {
	selections := &mockSelections{selections: map[int64]*domain.Selection{}}
	if sel != nil {
		selections.selections[42] = sel
	}
	bookings := &mockBookingRepo{}
	users := &mockUserRepo{cars: map[int64]struct {
		car     domain.Car
		ownerID int64
	}{
		7: {car: domain.Car{ID: 7, Brand: "Honda", Model: "City"}, ownerID: 42},
		8: {car: domain.Car{ID: 8, Brand: "Tata", Model: "Nexon"}, ownerID: 99},
	}}

	uc := NewUseCase(selections, bookings, users, mockCatalog{}, fakeTxManager{}, nopLogger{})
	uc.timeProvider = fixedTime{now: time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)}

	return &fixture{uc: uc, selections: selections, bookings: bookings}
}

func TestExecute(t *testing.T) {
	f := newFixture(completeSelection())

	resp, err := f.uc.Execute(context.Background(), &Request{UserID: 42})
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, 5498.0, resp.TotalAmount)
	assert.Equal(t, 329.88, resp.GSTAmount)
	assert.Equal(t, 5827.88, resp.FinalAmount)
	assert.Equal(t, "Honda", resp.CarBrand)
	require.Len(t, resp.Services, 2)

	// Черновик очищен после успешной записи
	assert.Equal(t, []int64{42}, f.selections.cleared)
}

func TestExecute_MechanicOptional(t *testing.T) {
	sel := completeSelection()
	sel.SetMechanic("mechanic-1")
	f := newFixture(sel)

	resp, err := f.uc.Execute(context.Background(), &Request{UserID: 42})
	require.NoError(t, err)
	require.NotNil(t, resp.MechanicID)
	assert.Equal(t, "mechanic-1", *resp.MechanicID)
}

func TestExecute_IncompleteSelection(t *testing.T) {
	sel := &domain.Selection{}
	sel.SetCar(7)
	sel.AddService(domain.ServiceSnapshot{ServiceID: "service-1", Price: 1499})
	f := newFixture(sel)

	_, err := f.uc.Execute(context.Background(), &Request{UserID: 42})
	assert.ErrorIs(t, err, ErrIncompleteSelection)
	assert.Contains(t, err.Error(), "date")
	assert.Contains(t, err.Error(), "timeSlot")

	// Ничего не записано, черновик не тронут
	assert.Nil(t, f.bookings.created)
	assert.Empty(t, f.selections.cleared)
}

func TestExecute_EmptySelection(t *testing.T) {
	f := newFixture(nil)

	_, err := f.uc.Execute(context.Background(), &Request{UserID: 42})
	assert.ErrorIs(t, err, ErrIncompleteSelection)
}

func TestExecute_CarNotFound(t *testing.T) {
	sel := completeSelection()
	sel.SetCar(1000)
	f := newFixture(sel)

	_, err := f.uc.Execute(context.Background(), &Request{UserID: 42})
	assert.ErrorIs(t, err, ErrCarNotFound)
	assert.Empty(t, f.selections.cleared)
}

func TestExecute_CarOwnedByAnotherUser(t *testing.T) {
	sel := completeSelection()
	sel.SetCar(8)
	f := newFixture(sel)

	_, err := f.uc.Execute(context.Background(), &Request{UserID: 42})
	assert.ErrorIs(t, err, ErrCarNotOwned)
	assert.Nil(t, f.bookings.created)
}

func TestExecute_UnknownMechanic(t *testing.T) {
	sel := completeSelection()
	sel.MechanicID = ptr.Ptr("mechanic-42")
	f := newFixture(sel)

	_, err := f.uc.Execute(context.Background(), &Request{UserID: 42})
	assert.ErrorIs(t, err, ErrMechanicNotFound)
}

func TestExecute_DateInPast(t *testing.T) {
	sel := completeSelection()
	sel.Date = ptr.Ptr(time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC))
	f := newFixture(sel)

	_, err := f.uc.Execute(context.Background(), &Request{UserID: 42})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_RepoFailureKeepsSelection(t *testing.T) {
	f := newFixture(completeSelection())
	f.bookings.err = errors.New("db down")

	_, err := f.uc.Execute(context.Background(), &Request{UserID: 42})
	assert.ErrorIs(t, err, ErrInternal)

	// Черновик переживает сбой и доступен для повторной отправки
	assert.Empty(t, f.selections.cleared)
	assert.True(t, f.selections.selections[42].IsComplete())
}
