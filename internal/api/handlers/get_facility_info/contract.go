package get_facility_info

import (
	"context"

	"github.com/m04kA/SRF-AvailabilityService/internal/service/facilities/models"
)

type FacilitiesService interface {
	GetFacilityInfo(ctx context.Context, facilityKey string) (*models.FacilityInfoResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
