package purge_snapshots

import (
	"context"
	"time"

	"github.com/m04kA/SRF-AvailabilityService/internal/service/snapshots/models"
)

type SnapshotsService interface {
	PurgeBefore(ctx context.Context, before time.Time) (*models.PurgeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
