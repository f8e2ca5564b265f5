package get_user_bookings

import (
	"net/http"

	"github.com/e6carspa/booking-platform/internal/api/handlers"
	"github.com/e6carspa/booking-platform/internal/api/middleware"
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

// Handle GET /api/v1/bookings
// Отдает бронирования аутентифицированного пользователя.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	result, err := h.bookingService.GetUserBookings(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /bookings - Failed: user_id=%d, %v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
