package list_snapshots

import (
	"context"

	"github.com/m04kA/SRF-AvailabilityService/internal/service/snapshots/models"
)

type SnapshotsService interface {
	List(ctx context.Context, req *models.ListSnapshotsRequest) (*models.SnapshotListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
