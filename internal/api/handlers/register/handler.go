package register

import (
	"errors"
	"net/http"

	"github.com/e6carspa/booking-platform/internal/api/handlers"
	authService "github.com/e6carspa/booking-platform/internal/service/auth"
	"github.com/e6carspa/booking-platform/internal/service/auth/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgEmailTaken         = "email is already registered"
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

// Handle POST /api/v1/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.authService.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, authService.ErrEmailTaken):
			h.logger.Warn("POST /register - Email taken")
			handlers.RespondBadRequest(w, msgEmailTaken)

		case errors.Is(err, authService.ErrInvalidInput):
			h.logger.Warn("POST /register - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /register - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /register - Customer registered: user_id=%d", result.User.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
