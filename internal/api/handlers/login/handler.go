package login

import (
	"errors"
	"net/http"

	"github.com/e6carspa/booking-platform/internal/api/handlers"
	authService "github.com/e6carspa/booking-platform/internal/service/auth"
	"github.com/e6carspa/booking-platform/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	// Одно сообщение для незнакомого email и неверного пароля
	msgInvalidCredentials = "invalid email or password"
)

type Handler struct {
	authService AuthService
	logger      Logger
}

func NewHandler(authService AuthService, logger Logger) *Handler {
	return &Handler{
		authService: authService,
		logger:      logger,
	}
}

// Handle POST /api/v1/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrInvalidCredentials):
			h.logger.Warn("POST /login - Invalid credentials")
			handlers.RespondBadRequest(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /login - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /login - Authenticated: user_id=%d, role=%s", result.User.ID, result.User.Role)
	handlers.RespondJSON(w, http.StatusOK, result)
}
