package get_resource_packages

import (
	"context"

	"github.com/m04kA/SRF-AvailabilityService/internal/service/facilities/models"
)

type FacilitiesService interface {
	GetResourcePackages(ctx context.Context, facilityKey string, resourceID int64) (*models.PackagesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
