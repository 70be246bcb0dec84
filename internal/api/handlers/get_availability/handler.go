package get_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SRF-AvailabilityService/internal/api/handlers"
	getAvailability "github.com/m04kA/SRF-AvailabilityService/internal/usecase/get_availability"
)

const (
	msgMissingDate      = "дата обязательна"
	msgInvalidParams    = "некорректные параметры запроса"
	msgUnknownFacility  = "неизвестная площадка"
	msgNoResourcesMatch = "ни одно поле не подходит под фильтр"
	msgAuthFailed       = "не удалось аутентифицироваться на букинг-платформе"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityKey}/availability
// Query params: date (required, YYYY-MM-DD), field, minDuration, persist
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityKey := mux.Vars(r)["facilityKey"]
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /facilities/{key}/availability - Missing date: key=%s", facilityKey)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(facilityKey, dateStr, query.Get("field"), query.Get("minDuration"), query.Get("persist"))
	if err != nil {
		h.logger.Warn("GET /facilities/{key}/availability - Invalid params: key=%s, error=%v", facilityKey, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /facilities/{key}/availability - Invalid input: key=%s, error=%v", facilityKey, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getAvailability.ErrUnknownFacility):
			h.logger.Warn("GET /facilities/{key}/availability - Unknown facility: key=%s", facilityKey)
			handlers.RespondNotFound(w, msgUnknownFacility)

		case errors.Is(err, getAvailability.ErrResourceNotFound):
			h.logger.Warn("GET /facilities/{key}/availability - No resources match filter: key=%s", facilityKey)
			handlers.RespondNotFound(w, msgNoResourcesMatch)

		case errors.Is(err, getAvailability.ErrAuthFailed):
			h.logger.Error("GET /facilities/{key}/availability - Platform auth failed: key=%s, error=%v", facilityKey, err)
			handlers.RespondBadGateway(w, msgAuthFailed)

		default:
			h.logger.Error("GET /facilities/{key}/availability - Failed to get availability: key=%s, error=%v", facilityKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{key}/availability - Availability calculated: key=%s, date=%s, resources=%d",
		facilityKey, dateStr, len(result.Resources))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
