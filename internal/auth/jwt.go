package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/e6carspa/booking-platform/internal/domain"
)

// ErrInvalidToken возвращается для просроченного, поддельного или
// некорректно собранного токена
var ErrInvalidToken = errors.New("invalid token")

// TokenPayload проверенное содержимое токена
type TokenPayload struct {
	UserID  int64
	Role    domain.Role
	TokenID uuid.UUID
}

// claims состав JWT: субъект, роль и уникальный идентификатор выпуска
type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Manager выпускает и проверяет JWT-токены сервиса
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager создает менеджер токенов
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// IssueToken выпускает подписанный токен для пользователя с ролью
func (m *Manager) IssueToken(userID int64, role domain.Role) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("IssueToken - sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken проверяет подпись и срок действия токена.
// Любая причина отказа сворачивается в ErrInvalidToken, детали
// причин наружу не раскрываются.
func (m *Manager) VerifyToken(tokenString string) (*TokenPayload, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad subject %q", ErrInvalidToken, c.Subject)
	}

	role := domain.Role(c.Role)
	if !role.Valid() {
		return nil, fmt.Errorf("%w: bad role %q", ErrInvalidToken, c.Role)
	}

	tokenID, err := uuid.Parse(c.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: bad token id", ErrInvalidToken)
	}

	return &TokenPayload{
		UserID:  userID,
		Role:    role,
		TokenID: tokenID,
	}, nil
}
