package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/e6carspa/booking-platform/internal/api/handlers"
	"github.com/e6carspa/booking-platform/internal/catalog"
	"github.com/e6carspa/booking-platform/internal/domain"
)

const (
	msgInvalidDate      = "invalid date format, expected YYYY-MM-DD"
	msgMechanicNotFound = "mechanic not found"
)

type Handler struct {
	catalog Catalog
	logger  Logger
}

func NewHandler(catalog Catalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/mechanics/{mechanicId}/available-slots?date=YYYY-MM-DD
// Без параметра date слоты отдаются на сегодня.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	mechanicID := mux.Vars(r)["mechanicId"]

	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /mechanics/%s/available-slots - Invalid date %q", mechanicID, raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = parsed
	}

	slots, err := h.catalog.AvailableSlots(date, mechanicID)
	if err != nil {
		if errors.Is(err, catalog.ErrMechanicNotFound) {
			h.logger.Warn("GET /mechanics/%s/available-slots - Mechanic not found", mechanicID)
			handlers.RespondNotFound(w, msgMechanicNotFound)
			return
		}
		h.logger.Error("GET /mechanics/%s/available-slots - Failed: %v", mechanicID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainSlots(date, slots))
}
