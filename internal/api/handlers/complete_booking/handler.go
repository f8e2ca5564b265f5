package complete_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/e6carspa/booking-platform/internal/api/handlers"
	bookingService "github.com/e6carspa/booking-platform/internal/service/bookings"
)

const (
	msgInvalidBookingID  = "invalid booking id"
	msgBookingNotFound   = "booking not found"
	msgInvalidTransition = "booking cannot be completed from its current status"
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

// Handle PATCH /api/v1/admin/bookings/{bookingId}/complete
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.bookingService.Complete(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookingService.ErrBookingNotFound):
			h.logger.Warn("PATCH /admin/bookings/%d/complete - Not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingService.ErrInvalidTransition):
			h.logger.Warn("PATCH /admin/bookings/%d/complete - Invalid transition: %v", bookingID, err)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /admin/bookings/%d/complete - Failed: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/bookings/%d/complete - Now %s", bookingID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
