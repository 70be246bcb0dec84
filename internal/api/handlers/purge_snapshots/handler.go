package purge_snapshots

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SRF-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SRF-AvailabilityService/internal/domain"
	snapshotsService "github.com/m04kA/SRF-AvailabilityService/internal/service/snapshots"
)

const (
	msgMissingBefore = "параметр before обязателен"
	msgInvalidBefore = "некорректный формат before, ожидается YYYY-MM-DD"
)

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

// Handle DELETE /api/v1/snapshots
// Query params: before (required, YYYY-MM-DD) - удаляются снапшоты старше этой даты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	beforeStr := r.URL.Query().Get("before")
	if beforeStr == "" {
		h.logger.Warn("DELETE /snapshots - Missing before param")
		handlers.RespondBadRequest(w, msgMissingBefore)
		return
	}

	before, err := time.Parse(domain.DateFormat, beforeStr)
	if err != nil {
		h.logger.Warn("DELETE /snapshots - Invalid before param: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBefore)
		return
	}

	result, err := h.service.PurgeBefore(r.Context(), before)
	if err != nil {
		switch {
		case errors.Is(err, snapshotsService.ErrInvalidInput):
			h.logger.Warn("DELETE /snapshots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBefore)

		default:
			h.logger.Error("DELETE /snapshots - Failed to purge: before=%s, error=%v", beforeStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /snapshots - Purged %d snapshots before %s", result.Deleted, beforeStr)
	handlers.RespondJSON(w, http.StatusOK, result)
}
