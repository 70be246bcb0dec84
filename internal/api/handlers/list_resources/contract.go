package list_resources

import (
	"context"

	"github.com/m04kA/SRF-AvailabilityService/internal/service/facilities/models"
)

type FacilitiesService interface {
	ListResources(ctx context.Context, facilityKey string, nameFilter string) ([]models.ResourceInfo, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
