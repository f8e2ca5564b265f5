package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/e6carspa/booking-platform/internal/api/handlers"
	"github.com/e6carspa/booking-platform/internal/auth"
	"github.com/e6carspa/booking-platform/internal/domain"
)

const (
	msgMissingToken = "authorization token is required"
	msgInvalidToken = "invalid or expired token"
	msgForbidden    = "insufficient permissions"
)

// payloadKey ключ контекста для проверенного токена
type payloadKey struct{}

// TokenVerifier интерфейс проверки токенов доступа
type TokenVerifier interface {
	VerifyToken(token string) (*auth.TokenPayload, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth проверяет bearer-токен и кладет его payload в контекст.
// Отсутствующий и невалидный токен равнозначны: 401.
func Auth(verifier TokenVerifier, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				logger.Warn("%s %s - missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			payload, err := verifier.VerifyToken(token)
			if err != nil {
				logger.Warn("%s %s - token rejected: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), payloadKey{}, payload)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole пускает дальше только пользователей с указанной ролью.
// Вешается после Auth: аутентифицированный пользователь с чужой
// ролью получает 403.
func RequireRole(role domain.Role, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			payload, ok := GetPayload(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}
			if payload.Role != role {
				logger.Warn("%s %s - role %s denied, %s required", r.Method, r.URL.Path, payload.Role, role)
				handlers.RespondForbidden(w, msgForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// GetPayload достает payload токена из контекста
func GetPayload(ctx context.Context) (*auth.TokenPayload, bool) {
	payload, ok := ctx.Value(payloadKey{}).(*auth.TokenPayload)
	return payload, ok
}

// GetUserID достает ID пользователя из контекста.
// Вызывается только за Auth-middleware, поэтому отсутствие payload
// означает ошибку программирования.
func GetUserID(ctx context.Context) int64 {
	payload, ok := GetPayload(ctx)
	if !ok {
		return 0
	}
	return payload.UserID
}
