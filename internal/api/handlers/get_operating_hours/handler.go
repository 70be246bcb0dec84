package get_operating_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SRF-AvailabilityService/internal/api/handlers"
	facilitiesService "github.com/m04kA/SRF-AvailabilityService/internal/service/facilities"
)

const (
	msgInvalidResourceID = "некорректный ID поля"
	msgUnknownFacility   = "неизвестная площадка"
	msgResourceNotFound  = "поле не найдено"
	msgPlatformError     = "букинг-платформа недоступна"
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

// Handle GET /api/v1/facilities/{facilityKey}/resources/{resourceId}/hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	facilityKey := vars["facilityKey"]

	resourceID, err := strconv.ParseInt(vars["resourceId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /facilities/{key}/resources/{id}/hours - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	result, err := h.service.GetOperatingHours(r.Context(), facilityKey, resourceID)
	if err != nil {
		switch {
		case errors.Is(err, facilitiesService.ErrUnknownFacility):
			h.logger.Warn("GET /facilities/{key}/resources/{id}/hours - Unknown facility: key=%s", facilityKey)
			handlers.RespondNotFound(w, msgUnknownFacility)

		case errors.Is(err, facilitiesService.ErrResourceNotFound):
			h.logger.Warn("GET /facilities/{key}/resources/{id}/hours - Resource not found: key=%s, resource_id=%d",
				facilityKey, resourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, facilitiesService.ErrInternal):
			h.logger.Error("GET /facilities/{key}/resources/{id}/hours - Platform error: key=%s, resource_id=%d, error=%v",
				facilityKey, resourceID, err)
			handlers.RespondBadGateway(w, msgPlatformError)

		default:
			h.logger.Error("GET /facilities/{key}/resources/{id}/hours - Failed to get hours: key=%s, resource_id=%d, error=%v",
				facilityKey, resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{key}/resources/{id}/hours - Hours retrieved: key=%s, resource_id=%d, days=%d",
		facilityKey, resourceID, len(result.Hours))
	handlers.RespondJSON(w, http.StatusOK, result)
}
