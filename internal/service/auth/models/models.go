package models

import "github.com/e6carspa/booking-platform/internal/domain"

// CarRequest автомобиль в составе запроса регистрации
type CarRequest struct {
	Brand string  `json:"brand"`
	Model string  `json:"model"`
	Year  *int    `json:"year,omitempty"`
	Plate *string `json:"plate,omitempty"`
}

// RegisterRequest запрос на регистрацию клиента
type RegisterRequest struct {
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	Password string       `json:"password"`
	Phone    *string      `json:"phone,omitempty"`
	Cars     []CarRequest `json:"cars,omitempty"`
}

// LoginRequest запрос на вход.
// Role выбирает ветку проверки: "admin" сверяется с фиксированной
// учетной записью, любое другое значение трактуется как клиент.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// CarResponse автомобиль пользователя
type CarResponse struct {
	ID    int64   `json:"id"`
	Brand string  `json:"brand"`
	Model string  `json:"model"`
	Year  *int    `json:"year,omitempty"`
	Plate *string `json:"plate,omitempty"`
}

// UserResponse публичные данные учетной записи
type UserResponse struct {
	ID    int64         `json:"id"`
	Name  string        `json:"name"`
	Email string        `json:"email"`
	Role  string        `json:"role"`
	Cars  []CarResponse `json:"cars,omitempty"`
}

// AuthResponse ответ на регистрацию или вход
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// FromDomainUser конвертирует domain.User в публичную модель
func FromDomainUser(u *domain.User, role domain.Role) UserResponse {
	cars := make([]CarResponse, 0, len(u.Cars))
	for _, car := range u.Cars {
		cars = append(cars, CarResponse{
			ID:    car.ID,
			Brand: car.Brand,
			Model: car.Model,
			Year:  car.Year,
			Plate: car.Plate,
		})
	}
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  string(role),
		Cars:  cars,
	}
}
