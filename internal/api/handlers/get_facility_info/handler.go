package get_facility_info

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SRF-AvailabilityService/internal/api/handlers"
	facilitiesService "github.com/m04kA/SRF-AvailabilityService/internal/service/facilities"
)

const (
	msgUnknownFacility  = "неизвестная площадка"
	msgFacilityNotFound = "площадка не найдена на платформе"
	msgPlatformError    = "букинг-платформа недоступна"
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

// Handle GET /api/v1/facilities/{facilityKey}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityKey := mux.Vars(r)["facilityKey"]

	result, err := h.service.GetFacilityInfo(r.Context(), facilityKey)
	if err != nil {
		switch {
		case errors.Is(err, facilitiesService.ErrUnknownFacility):
			h.logger.Warn("GET /facilities/{key} - Unknown facility: key=%s", facilityKey)
			handlers.RespondNotFound(w, msgUnknownFacility)

		case errors.Is(err, facilitiesService.ErrFacilityNotFound):
			h.logger.Warn("GET /facilities/{key} - Facility not found on platform: key=%s", facilityKey)
			handlers.RespondNotFound(w, msgFacilityNotFound)

		case errors.Is(err, facilitiesService.ErrInternal):
			h.logger.Error("GET /facilities/{key} - Platform error: key=%s, error=%v", facilityKey, err)
			handlers.RespondBadGateway(w, msgPlatformError)

		default:
			h.logger.Error("GET /facilities/{key} - Failed to get facility: key=%s, error=%v", facilityKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{key} - Facility retrieved: key=%s, resources=%d", facilityKey, len(result.Resources))
	handlers.RespondJSON(w, http.StatusOK, result)
}
