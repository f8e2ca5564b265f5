package add_selection_service

import (
	"errors"
	"net/http"

	"github.com/e6carspa/booking-platform/internal/api/handlers"
	"github.com/e6carspa/booking-platform/internal/api/middleware"
	selectionService "github.com/e6carspa/booking-platform/internal/service/selection"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgServiceRequired    = "serviceId is required"
	msgServiceNotFound    = "service not found"
)

// AddServiceRequest HTTP request model
type AddServiceRequest struct {
	ServiceID string `json:"serviceId"`
}

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

// Handle POST /api/v1/selection/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req AddServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /selection/services - Invalid request body: user_id=%d, %v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.ServiceID == "" {
		handlers.RespondBadRequest(w, msgServiceRequired)
		return
	}

	result, err := h.selectionService.AddService(userID, req.ServiceID)
	if err != nil {
		if errors.Is(err, selectionService.ErrServiceNotFound) {
			h.logger.Warn("POST /selection/services - Service not found: user_id=%d, service_id=%s", userID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)
			return
		}
		h.logger.Error("POST /selection/services - Failed: user_id=%d, %v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
