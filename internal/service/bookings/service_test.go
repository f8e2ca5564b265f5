package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e6carspa/booking-platform/internal/domain"
	bookingRepo "github.com/e6carspa/booking-platform/internal/infra/storage/booking"
)

type mockRepo struct {
	bookings map[int64]*domain.Booking
}

func newMockRepo(bookings ...*domain.Booking) *mockRepo {
	m := &mockRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		m.bookings[b.ID] = b
	}
	return m
}

func (m *mockRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (m *mockRepo) GetByUserID(_ context.Context, userID int64) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range m.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockRepo) GetAll(_ context.Context) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0, len(m.bookings))
	for _, b := range m.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (m *mockRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := m.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testBooking(id, userID int64, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          id,
		UserID:      userID,
		CarID:       1,
		Services:    []domain.ServiceSnapshot{{ServiceID: "service-1", Name: "Car Wash & Polish", Price: 1499}},
		BookingDate: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		SlotStart:   "10:00",
		SlotEnd:     "11:00",
		Status:      status,
		TotalAmount: 1499,
		GSTAmount:   89.94,
		FinalAmount: 1588.94,
	}
}

func newTestService(repo *mockRepo) *Service {
	return NewService(repo, fakeTxManager{}, nil, nopLogger{})
}

func TestService_GetByID_Owner(t *testing.T) {
	svc := newTestService(newMockRepo(testBooking(1, 42, domain.StatusPending)))

	got, err := svc.GetByID(context.Background(), 1, 42, domain.RoleCustomer)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "pending", got.Status)
}

func TestService_GetByID_OtherCustomerDenied(t *testing.T) {
	svc := newTestService(newMockRepo(testBooking(1, 42, domain.StatusPending)))

	_, err := svc.GetByID(context.Background(), 1, 99, domain.RoleCustomer)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestService_GetByID_AdminSeesAny(t *testing.T) {
	svc := newTestService(newMockRepo(testBooking(1, 42, domain.StatusPending)))

	got, err := svc.GetByID(context.Background(), 1, 0, domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.UserID)
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc := newTestService(newMockRepo())

	_, err := svc.GetByID(context.Background(), 5, 42, domain.RoleCustomer)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Confirm(t *testing.T) {
	repo := newMockRepo(testBooking(1, 42, domain.StatusPending))
	svc := newTestService(repo)

	got, err := svc.Confirm(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", got.Status)
	assert.Equal(t, domain.StatusConfirmed, repo.bookings[1].Status)
}

func TestService_Confirm_AlreadyConfirmedIsNoop(t *testing.T) {
	repo := newMockRepo(testBooking(1, 42, domain.StatusConfirmed))
	svc := newTestService(repo)

	got, err := svc.Confirm(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", got.Status)
}

func TestService_Complete_FromPendingRejected(t *testing.T) {
	repo := newMockRepo(testBooking(1, 42, domain.StatusPending))
	svc := newTestService(repo)

	_, err := svc.Complete(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, domain.StatusPending, repo.bookings[1].Status)
}

func TestService_Confirm_FromCompletedRejected(t *testing.T) {
	repo := newMockRepo(testBooking(1, 42, domain.StatusCompleted))
	svc := newTestService(repo)

	// Completed уже позади confirmed, но повторное применение того же
	// статуса не делаем — это движение назад
	_, err := svc.Confirm(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_Confirm_NotFound(t *testing.T) {
	svc := newTestService(newMockRepo())

	_, err := svc.Confirm(context.Background(), 9)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
