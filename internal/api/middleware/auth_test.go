package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e6carspa/booking-platform/internal/auth"
	"github.com/e6carspa/booking-platform/internal/domain"
)

type fakeVerifier struct {
	payload *auth.TokenPayload
}

func (f fakeVerifier) VerifyToken(token string) (*auth.TokenPayload, error) {
	if token == "good" && f.payload != nil {
		return f.payload, nil
	}
	return nil, errors.New("bad token")
}

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

func customerPayload() *auth.TokenPayload {
	return &auth.TokenPayload{UserID: 42, Role: domain.RoleCustomer}
}

func TestAuth_MissingToken(t *testing.T) {
	handler := Auth(fakeVerifier{payload: customerPayload()}, nopLogger{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	handler := Auth(fakeVerifier{payload: customerPayload()}, nopLogger{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	req.Header.Set("Authorization", "Bearer forged")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	// Невалидный токен неотличим от отсутствующего
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_ValidTokenReachesHandler(t *testing.T) {
	var gotUserID int64
	handler := Auth(fakeVerifier{payload: customerPayload()}, nopLogger{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/bookings", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(42), gotUserID)
}

func TestRequireRole_WrongRoleForbidden(t *testing.T) {
	chain := Auth(fakeVerifier{payload: customerPayload()}, nopLogger{})(
		RequireRole(domain.RoleAdmin, nopLogger{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not be reached")
		})),
	)

	req := httptest.NewRequest(http.MethodGet, "/admin/bookings", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRole_MatchingRolePasses(t *testing.T) {
	admin := &auth.TokenPayload{UserID: 0, Role: domain.RoleAdmin}
	chain := Auth(fakeVerifier{payload: admin}, nopLogger{})(
		RequireRole(domain.RoleAdmin, nopLogger{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})),
	)

	req := httptest.NewRequest(http.MethodGet, "/admin/bookings", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
