package snapshots

import (
	"context"
	"time"

	"github.com/m04kA/SRF-AvailabilityService/internal/domain"
)

// SnapshotRepository интерфейс репозитория снапшотов
type SnapshotRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.AvailabilitySnapshot, error)
	ListWithFilter(ctx context.Context, filter domain.SnapshotFilter) ([]*domain.AvailabilitySnapshot, error)
	PurgeBefore(ctx context.Context, before time.Time) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
