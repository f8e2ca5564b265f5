package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/e6carspa/booking-platform/internal/domain"
	userRepo "github.com/e6carspa/booking-platform/internal/infra/storage/user"
	"github.com/e6carspa/booking-platform/internal/service/auth/models"
)

type mockUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{byEmail: make(map[string]*domain.User), nextID: 1}
}

func (m *mockUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := m.byEmail[user.Email]; ok {
		return nil, userRepo.ErrEmailExists
	}
	user.ID = m.nextID
	m.nextID++
	for i := range user.Cars {
		user.Cars[i].ID = int64(i + 1)
	}
	m.byEmail[user.Email] = user
	return user, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := m.byEmail[email]; ok {
		return u, nil
	}
	return nil, userRepo.ErrUserNotFound
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, userRepo.ErrUserNotFound
}

type mockTokens struct{}

func (mockTokens) IssueToken(userID int64, role domain.Role) (string, error) {
	return fmt.Sprintf("token-%d-%s", userID, role), nil
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

func newTestService(t *testing.T, repo UserRepository) *Service {
	t.Helper()
	svc, err := NewService(repo, fakeTxManager{}, mockTokens{}, "admin@e6carspa.com", "Admin@123", nopLogger{})
	require.NoError(t, err)
	return svc
}

func registerReq() *models.RegisterRequest {
	return &models.RegisterRequest{
		Name:     "Arjun Mehta",
		Email:    "arjun@example.com",
		Password: "secret123",
		Cars: []models.CarRequest{
			{Brand: "Honda", Model: "City"},
		},
	}
}

func TestService_Register(t *testing.T) {
	repo := newMockUserRepo()
	svc := newTestService(t, repo)

	resp, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	assert.Equal(t, "token-1-customer", resp.Token)
	assert.Equal(t, "arjun@example.com", resp.User.Email)
	assert.Equal(t, "customer", resp.User.Role)
	require.Len(t, resp.User.Cars, 1)

	// Пароль хранится только в виде bcrypt-хэша
	stored := repo.byEmail["arjun@example.com"]
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	svc := newTestService(t, newMockUserRepo())

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerReq())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_Register_AdminEmailRejected(t *testing.T) {
	svc := newTestService(t, newMockUserRepo())

	req := registerReq()
	req.Email = "admin@e6carspa.com"
	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_Register_Validation(t *testing.T) {
	svc := newTestService(t, newMockUserRepo())

	tests := []struct {
		name   string
		mutate func(r *models.RegisterRequest)
	}{
		{name: "empty name", mutate: func(r *models.RegisterRequest) { r.Name = "  " }},
		{name: "bad email", mutate: func(r *models.RegisterRequest) { r.Email = "not-an-email" }},
		{name: "short password", mutate: func(r *models.RegisterRequest) { r.Password = "abc" }},
		{name: "car without model", mutate: func(r *models.RegisterRequest) { r.Cars[0].Model = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := registerReq()
			tt.mutate(req)
			_, err := svc.Register(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_Login(t *testing.T) {
	svc := newTestService(t, newMockUserRepo())

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "Arjun@Example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-1-customer", resp.Token)
	assert.Len(t, resp.User.Cars, 1)
}

func TestService_Login_GenericErrorForBadEmailAndBadPassword(t *testing.T) {
	svc := newTestService(t, newMockUserRepo())

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	_, errUnknown := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret123",
	})
	_, errWrongPass := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "arjun@example.com",
		Password: "wrong-pass",
	})

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	// Сообщения совпадают, перебор email по ответам невозможен
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

func TestService_Login_Admin(t *testing.T) {
	svc := newTestService(t, newMockUserRepo())

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "admin@e6carspa.com",
		Password: "Admin@123",
		Role:     "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-0-admin", resp.Token)
	assert.Equal(t, "admin", resp.User.Role)
}

func TestService_Login_AdminWrongPassword(t *testing.T) {
	svc := newTestService(t, newMockUserRepo())

	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "admin@e6carspa.com",
		Password: "nope",
		Role:     "admin",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_RoleSelectsBranch(t *testing.T) {
	svc := newTestService(t, newMockUserRepo())

	// Правильная пара администратора без роли admin идет клиентской
	// веткой и отклоняется как обычный незнакомый email
	_, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "admin@e6carspa.com",
		Password: "Admin@123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Роль admin с чужим email отклоняется тем же generic-отказом
	_, err = svc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "Admin@123",
		Role:     "admin",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_CustomerRoleExplicit(t *testing.T) {
	svc := newTestService(t, newMockUserRepo())

	_, err := svc.Register(context.Background(), registerReq())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{
		Email:    "arjun@example.com",
		Password: "secret123",
		Role:     "customer",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-1-customer", resp.Token)
}
