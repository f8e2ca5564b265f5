package get_mechanics

import (
	"net/http"

	"github.com/e6carspa/booking-platform/internal/api/handlers"
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

// Handle GET /api/v1/mechanics
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	mechanics := h.catalog.Mechanics()
	handlers.RespondJSON(w, http.StatusOK, FromDomainMechanics(mechanics))
}
