package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SRF-AvailabilityService/internal/domain"
	"github.com/m04kA/SRF-AvailabilityService/internal/integrations/bondsports"
)

// BondSportsClient интерфейс клиента букинг-платформы
type BondSportsClient interface {
	GetFacilityResources(ctx context.Context, orgID, facilityID int64) ([]bondsports.Resource, error)
	GetVenueSlots(ctx context.Context, creds *bondsports.Credentials, facilityID int64, startDate, endDate string) ([]bondsports.Slot, error)
}

// CredentialsSource источник учетных данных платформы
// Invalidate сбрасывает кеш после отказа аутентификации
type CredentialsSource interface {
	Credentials(ctx context.Context) (*bondsports.Credentials, error)
	Invalidate()
}

// SnapshotRepository интерфейс репозитория для сохранения результатов расчёта
type SnapshotRepository interface {
	Create(ctx context.Context, snap *domain.AvailabilitySnapshot) (*domain.AvailabilitySnapshot, error)
}

// TransactionManager интерфейс менеджера транзакций
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
