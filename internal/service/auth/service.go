package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/e6carspa/booking-platform/internal/domain"
	userRepo "github.com/e6carspa/booking-platform/internal/infra/storage/user"
	"github.com/e6carspa/booking-platform/internal/service/auth/models"
)

// adminUserID фиктивный идентификатор администратора: админ один,
// задается конфигурацией и в таблице users не хранится
const adminUserID = 0

// Service сервис регистрации и аутентификации.
// Админская учетка одна, берется из конфигурации; её пароль
// хэшируется при создании сервиса и открытым в памяти не живет.
type Service struct {
	userRepo      UserRepository
	txManager     TransactionManager
	tokens        TokenIssuer
	adminEmail    string
	adminPassHash []byte
	logger        Logger
}

// NewService создает сервис аутентификации
func NewService(
	userRepo UserRepository,
	txManager TransactionManager,
	tokens TokenIssuer,
	adminEmail, adminPassword string,
	logger Logger,
) (*Service, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("auth: hash admin password: %w", err)
	}

	return &Service{
		userRepo:      userRepo,
		txManager:     txManager,
		tokens:        tokens,
		adminEmail:    strings.ToLower(adminEmail),
		adminPassHash: hash,
		logger:        logger,
	}, nil
}

// Register создает учетную запись клиента и сразу выдает токен
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if err := validateRegister(req); err != nil {
		s.logger.Warn("Register: invalid input for email=%s: %v", req.Email, err)
		return nil, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == s.adminEmail {
		// Регистрация на адрес администратора выглядит как занятый email
		s.logger.Warn("Register: attempt to register admin email")
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	user := &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
		Cars:         toDomainCars(req.Cars),
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		created, err := s.userRepo.Create(ctx, user)
		if err != nil {
			if errors.Is(err, userRepo.ErrEmailExists) {
				return ErrEmailTaken
			}
			return fmt.Errorf("%w: Register - create user: %v", ErrInternal, err)
		}
		user = created
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrEmailTaken) {
			s.logger.Error("Register: failed for email=%s: %v", email, err)
		}
		return nil, err
	}

	token, err := s.tokens.IssueToken(user.ID, domain.RoleCustomer)
	if err != nil {
		return nil, fmt.Errorf("%w: Register - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Register: new customer id=%d", user.ID)
	return &models.AuthResponse{
		Token: token,
		User:  models.FromDomainUser(user, domain.RoleCustomer),
	}, nil
}

// Login проверяет пару email/пароль и выдает токен.
// Неизвестный email и неверный пароль неразличимы для клиента.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Ветку выбирает роль из запроса, не email: клиентская попытка
	// с email администратора идет обычным путем и получает тот же
	// generic-отказ
	if domain.Role(strings.TrimSpace(req.Role)) == domain.RoleAdmin {
		return s.loginAdmin(email, req.Password)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email")
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		s.logger.Warn("Login: wrong password for user id=%d", user.ID)
		return nil, ErrInvalidCredentials
	}

	// Для ответа нужны автомобили, GetByEmail их не подгружает
	full, err := s.userRepo.GetByID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: Login - load user: %v", ErrInternal, err)
	}

	token, err := s.tokens.IssueToken(full.ID, domain.RoleCustomer)
	if err != nil {
		return nil, fmt.Errorf("%w: Login - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: customer id=%d", full.ID)
	return &models.AuthResponse{
		Token: token,
		User:  models.FromDomainUser(full, domain.RoleCustomer),
	}, nil
}

func (s *Service) loginAdmin(email, password string) (*models.AuthResponse, error) {
	if email != s.adminEmail || bcrypt.CompareHashAndPassword(s.adminPassHash, []byte(password)) != nil {
		s.logger.Warn("Login: admin credentials rejected")
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.IssueToken(adminUserID, domain.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("%w: loginAdmin - issue token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: admin")
	return &models.AuthResponse{
		Token: token,
		User: models.UserResponse{
			ID:    adminUserID,
			Name:  "Administrator",
			Email: s.adminEmail,
			Role:  string(domain.RoleAdmin),
		},
	}, nil
}

func validateRegister(req *models.RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" || len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || len(email) > domain.MaxEmailLength || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: valid email is required", ErrInvalidInput)
	}
	if len(req.Password) < domain.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, domain.MinPasswordLength)
	}
	for _, car := range req.Cars {
		if strings.TrimSpace(car.Brand) == "" || strings.TrimSpace(car.Model) == "" {
			return fmt.Errorf("%w: car brand and model are required", ErrInvalidInput)
		}
	}
	return nil
}

func toDomainCars(cars []models.CarRequest) []domain.Car {
	out := make([]domain.Car, 0, len(cars))
	for _, car := range cars {
		out = append(out, domain.Car{
			Brand: strings.TrimSpace(car.Brand),
			Model: strings.TrimSpace(car.Model),
			Year:  car.Year,
			Plate: car.Plate,
		})
	}
	return out
}
