package update_selection

import (
	"errors"
	"net/http"

	"github.com/e6carspa/booking-platform/internal/api/handlers"
	"github.com/e6carspa/booking-platform/internal/api/middleware"
	selectionService "github.com/e6carspa/booking-platform/internal/service/selection"
	"github.com/e6carspa/booking-platform/internal/service/selection/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgMechanicNotFound   = "mechanic not found"
)

type Handler struct {
	selectionService SelectionService
	logger           Logger
}

func NewHandler(selectionService SelectionService, logger Logger) *Handler {
	return &Handler{
		selectionService: selectionService,
		logger:           logger,
	}
}

// Handle PATCH /api/v1/selection
// Применяет только переданные поля черновика.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req models.UpdateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /selection - Invalid request body: user_id=%d, %v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.selectionService.Update(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, selectionService.ErrMechanicNotFound):
			h.logger.Warn("PATCH /selection - Mechanic not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgMechanicNotFound)

		case errors.Is(err, selectionService.ErrInvalidInput):
			h.logger.Warn("PATCH /selection - Validation failed: user_id=%d, %v", userID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /selection - Failed: user_id=%d, %v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
