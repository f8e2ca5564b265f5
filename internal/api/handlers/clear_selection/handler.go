package clear_selection

import (
	"net/http"

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

// Handle DELETE /api/v1/selection
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	h.selectionService.Clear(userID)
	w.WriteHeader(http.StatusNoContent)
}
