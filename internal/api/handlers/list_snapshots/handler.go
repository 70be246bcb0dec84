package list_snapshots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SRF-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SRF-AvailabilityService/internal/domain"
	snapshotsService "github.com/m04kA/SRF-AvailabilityService/internal/service/snapshots"
	"github.com/m04kA/SRF-AvailabilityService/internal/service/snapshots/models"
	"github.com/m04kA/SRF-AvailabilityService/pkg/ptr"
)

const (
	msgInvalidResourceID = "некорректный ID поля"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidLimit      = "некорректное значение limit"
	msgUnknownFacility   = "неизвестная площадка"
)

// defaultLimit ограничение списка по умолчанию
const defaultLimit = 50

type Handler struct {
	service SnapshotsService
	logger  Logger
}

func NewHandler(service SnapshotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityKey}/snapshots
// Query params: resourceId, date (YYYY-MM-DD), limit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityKey := mux.Vars(r)["facilityKey"]
	query := r.URL.Query()

	req := &models.ListSnapshotsRequest{
		FacilityKey: facilityKey,
		Limit:       defaultLimit,
	}

	if resourceIDStr := query.Get("resourceId"); resourceIDStr != "" {
		resourceID, err := strconv.ParseInt(resourceIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /facilities/{key}/snapshots - Invalid resource ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidResourceID)
			return
		}
		req.ResourceID = ptr.Ptr(resourceID)
	}

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /facilities/{key}/snapshots - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = ptr.Ptr(date)
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.ParseUint(limitStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /facilities/{key}/snapshots - Invalid limit: %v", err)
			handlers.RespondBadRequest(w, msgInvalidLimit)
			return
		}
		req.Limit = limit
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, snapshotsService.ErrUnknownFacility):
			h.logger.Warn("GET /facilities/{key}/snapshots - Unknown facility: key=%s", facilityKey)
			handlers.RespondNotFound(w, msgUnknownFacility)

		default:
			h.logger.Error("GET /facilities/{key}/snapshots - Failed to list snapshots: key=%s, error=%v", facilityKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{key}/snapshots - Snapshots listed: key=%s, count=%d", facilityKey, len(result.Snapshots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
