package facilities

import (
	"context"

	"github.com/m04kA/SRF-AvailabilityService/internal/integrations/bondsports"
)

// BondSportsClient интерфейс клиента букинг-платформы
// Используются только публичные эндпоинты, учетные данные не нужны
type BondSportsClient interface {
	GetFacility(ctx context.Context, facilityID int64) (*bondsports.Facility, error)
	GetFacilityResources(ctx context.Context, orgID, facilityID int64) ([]bondsports.Resource, error)
	GetResource(ctx context.Context, resourceID int64) (*bondsports.Resource, error)
	GetResourcePackages(ctx context.Context, resourceID int64) ([]bondsports.Package, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
