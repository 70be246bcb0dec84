package get_snapshot

import (
	"context"

	"github.com/m04kA/SRF-AvailabilityService/internal/service/snapshots/models"
)

type SnapshotsService interface {
	GetByID(ctx context.Context, id int64) (*models.SnapshotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
