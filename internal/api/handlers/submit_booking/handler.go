package submit_booking

import (
	"errors"
	"net/http"

	"github.com/e6carspa/booking-platform/internal/api/handlers"
	"github.com/e6carspa/booking-platform/internal/api/middleware"
	submitBooking "github.com/e6carspa/booking-platform/internal/usecase/submit_booking"
)

const (
	msgCarNotFound      = "car not found"
	msgCarNotOwned      = "car belongs to another user"
	msgMechanicNotFound = "mechanic not found"
	msgDateInPast       = "booking date is in the past"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
// Тело не нужно: бронирование собирается из накопленного черновика.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	result, err := h.useCase.Execute(r.Context(), &submitBooking.Request{UserID: userID})
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrIncompleteSelection):
			h.logger.Warn("POST /bookings - Incomplete selection: user_id=%d, %v", userID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, submitBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Date in past: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, submitBooking.ErrCarNotFound):
			h.logger.Warn("POST /bookings - Car not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, submitBooking.ErrCarNotOwned):
			h.logger.Warn("POST /bookings - Car not owned: user_id=%d", userID)
			handlers.RespondForbidden(w, msgCarNotOwned)

		case errors.Is(err, submitBooking.ErrMechanicNotFound):
			h.logger.Warn("POST /bookings - Mechanic not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgMechanicNotFound)

		default:
			h.logger.Error("POST /bookings - Failed: user_id=%d, %v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, user_id=%d", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
