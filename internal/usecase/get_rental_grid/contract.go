package get_rental_grid

import (
	"context"

	"github.com/m04kA/SRF-AvailabilityService/internal/integrations/bondsports"
)

// BondSportsClient интерфейс клиента букинг-платформы
type BondSportsClient interface {
	GetFacilityResources(ctx context.Context, orgID, facilityID int64) ([]bondsports.Resource, error)
	CheckAvailability(ctx context.Context, creds *bondsports.Credentials, orgID, facilityID int64, dates []string, sport int) (map[string][]bondsports.GridSlot, error)
}

// CredentialsSource источник учетных данных платформы
type CredentialsSource interface {
	Credentials(ctx context.Context) (*bondsports.Credentials, error)
	Invalidate()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
