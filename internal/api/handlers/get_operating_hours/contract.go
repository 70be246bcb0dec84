package get_operating_hours

import (
	"context"

	"github.com/m04kA/SRF-AvailabilityService/internal/service/facilities/models"
)

type FacilitiesService interface {
	GetOperatingHours(ctx context.Context, facilityKey string, resourceID int64) (*models.OperatingHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
