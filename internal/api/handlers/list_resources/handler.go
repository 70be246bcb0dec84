package list_resources

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SRF-AvailabilityService/internal/api/handlers"
	facilitiesService "github.com/m04kA/SRF-AvailabilityService/internal/service/facilities"
	"github.com/m04kA/SRF-AvailabilityService/internal/service/facilities/models"
)

const (
	msgUnknownFacility = "неизвестная площадка"
	msgPlatformError   = "букинг-платформа недоступна"
)

type Handler struct {
	service FacilitiesService
	logger  Logger
}

func NewHandler(service FacilitiesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// ResourceListResponse HTTP response model
type ResourceListResponse struct {
	Resources []models.ResourceInfo `json:"resources"`
}

// Handle GET /api/v1/facilities/{facilityKey}/resources
// Query params: field (optional, частичное совпадение имени поля)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityKey := mux.Vars(r)["facilityKey"]
	fieldFilter := r.URL.Query().Get("field")

	resources, err := h.service.ListResources(r.Context(), facilityKey, fieldFilter)
	if err != nil {
		switch {
		case errors.Is(err, facilitiesService.ErrUnknownFacility):
			h.logger.Warn("GET /facilities/{key}/resources - Unknown facility: key=%s", facilityKey)
			handlers.RespondNotFound(w, msgUnknownFacility)

		case errors.Is(err, facilitiesService.ErrInternal):
			h.logger.Error("GET /facilities/{key}/resources - Platform error: key=%s, error=%v", facilityKey, err)
			handlers.RespondBadGateway(w, msgPlatformError)

		default:
			h.logger.Error("GET /facilities/{key}/resources - Failed to list resources: key=%s, error=%v", facilityKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{key}/resources - Resources listed: key=%s, filter=%q, count=%d",
		facilityKey, fieldFilter, len(resources))
	handlers.RespondJSON(w, http.StatusOK, &ResourceListResponse{Resources: resources})
}
