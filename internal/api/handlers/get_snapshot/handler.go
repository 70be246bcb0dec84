package get_snapshot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SRF-AvailabilityService/internal/api/handlers"
	snapshotsService "github.com/m04kA/SRF-AvailabilityService/internal/service/snapshots"
)

const (
	msgInvalidSnapshotID = "некорректный ID снапшота"
	msgSnapshotNotFound  = "снапшот не найден"
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

// Handle GET /api/v1/snapshots/{snapshotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	snapshotID, err := strconv.ParseInt(mux.Vars(r)["snapshotId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /snapshots/{id} - Invalid snapshot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSnapshotID)
		return
	}

	result, err := h.service.GetByID(r.Context(), snapshotID)
	if err != nil {
		switch {
		case errors.Is(err, snapshotsService.ErrInvalidInput):
			h.logger.Warn("GET /snapshots/{id} - Invalid input: snapshot_id=%d, error=%v", snapshotID, err)
			handlers.RespondBadRequest(w, msgInvalidSnapshotID)

		case errors.Is(err, snapshotsService.ErrSnapshotNotFound):
			h.logger.Warn("GET /snapshots/{id} - Snapshot not found: snapshot_id=%d", snapshotID)
			handlers.RespondNotFound(w, msgSnapshotNotFound)

		default:
			h.logger.Error("GET /snapshots/{id} - Failed to get snapshot: snapshot_id=%d, error=%v", snapshotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /snapshots/{id} - Snapshot retrieved: snapshot_id=%d", snapshotID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
