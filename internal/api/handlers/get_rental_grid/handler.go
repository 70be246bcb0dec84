package get_rental_grid

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SRF-AvailabilityService/internal/api/handlers"
	getRentalGrid "github.com/m04kA/SRF-AvailabilityService/internal/usecase/get_rental_grid"
)

const (
	msgMissingDate     = "дата обязательна"
	msgInvalidParams   = "некорректные параметры запроса"
	msgUnknownFacility = "неизвестная площадка"
	msgAuthFailed      = "не удалось аутентифицироваться на букинг-платформе"
)

type Handler struct {
	useCase GetRentalGridUseCase
	logger  Logger
}

func NewHandler(useCase GetRentalGridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/facilities/{facilityKey}/rental-grid
// Query params: date (required, YYYY-MM-DD), days, sport
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	facilityKey := mux.Vars(r)["facilityKey"]
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /facilities/{key}/rental-grid - Missing date: key=%s", facilityKey)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(facilityKey, dateStr, query.Get("days"), query.Get("sport"))
	if err != nil {
		h.logger.Warn("GET /facilities/{key}/rental-grid - Invalid params: key=%s, error=%v", facilityKey, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getRentalGrid.ErrInvalidInput):
			h.logger.Warn("GET /facilities/{key}/rental-grid - Invalid input: key=%s, error=%v", facilityKey, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getRentalGrid.ErrUnknownFacility):
			h.logger.Warn("GET /facilities/{key}/rental-grid - Unknown facility: key=%s", facilityKey)
			handlers.RespondNotFound(w, msgUnknownFacility)

		case errors.Is(err, getRentalGrid.ErrAuthFailed):
			h.logger.Error("GET /facilities/{key}/rental-grid - Platform auth failed: key=%s, error=%v", facilityKey, err)
			handlers.RespondBadGateway(w, msgAuthFailed)

		default:
			h.logger.Error("GET /facilities/{key}/rental-grid - Failed to get grid: key=%s, error=%v", facilityKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /facilities/{key}/rental-grid - Grid retrieved: key=%s, date=%s, days=%d",
		facilityKey, dateStr, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
