package get_services

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

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	services := h.catalog.Services()
	handlers.RespondJSON(w, http.StatusOK, FromDomainServices(services))
}
