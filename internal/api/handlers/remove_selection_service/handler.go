package remove_selection_service

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/e6carspa/booking-platform/internal/api/handlers"
	"github.com/e6carspa/booking-platform/internal/api/middleware"
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

// Handle DELETE /api/v1/selection/services/{serviceId}
// Удаление невыбранной услуги не ошибка: ответ всегда текущий черновик.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	serviceID := mux.Vars(r)["serviceId"]

	result := h.selectionService.RemoveService(userID, serviceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
