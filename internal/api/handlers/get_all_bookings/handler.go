package get_all_bookings

import (
	"net/http"

	"github.com/e6carspa/booking-platform/internal/api/handlers"
)

type Handler struct {
	bookingService BookingService
	logger         Logger
}

func NewHandler(bookingService BookingService, logger Logger) *Handler {
	return &Handler{
		bookingService: bookingService,
		logger:         logger,
	}
}

// Handle GET /api/v1/admin/bookings
// Роль admin гарантирует middleware.RequireRole.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.bookingService.GetAllBookings(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/bookings - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
