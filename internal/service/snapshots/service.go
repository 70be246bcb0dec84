package snapshots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SRF-AvailabilityService/internal/domain"
	snapshotStorage "github.com/m04kA/SRF-AvailabilityService/internal/infra/storage/snapshot"
	"github.com/m04kA/SRF-AvailabilityService/internal/service/snapshots/models"
)

// Service сервис для чтения и очистки сохранённых снапшотов доступности
type Service struct {
	repo   SnapshotRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса снапшотов
func NewService(repo SnapshotRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// GetByID получает снапшот по идентификатору
func (s *Service) GetByID(ctx context.Context, id int64) (*models.SnapshotResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: snapshot id must be positive", ErrInvalidInput)
	}

	snapshot, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, snapshotStorage.ErrSnapshotNotFound) {
			s.logger.Warn("GetByID: snapshot id=%d not found", id)
			return nil, ErrSnapshotNotFound
		}
		s.logger.Error("GetByID: failed to get snapshot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSnapshot(snapshot), nil
}

// List получает снапшоты площадки с опциональными фильтрами по ресурсу и дате
func (s *Service) List(ctx context.Context, req *models.ListSnapshotsRequest) (*models.SnapshotListResponse, error) {
	if _, ok := domain.FacilityByKey(req.FacilityKey); !ok {
		s.logger.Warn("List: unknown facility key=%s", req.FacilityKey)
		return nil, ErrUnknownFacility
	}

	snapshots, err := s.repo.ListWithFilter(ctx, domain.SnapshotFilter{
		FacilityKey: req.FacilityKey,
		ResourceID:  req.ResourceID,
		Date:        req.Date,
		Limit:       req.Limit,
	})
	if err != nil {
		s.logger.Error("List: failed to list snapshots for facility key=%s: %v", req.FacilityKey, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: facility key=%s, found %d snapshots", req.FacilityKey, len(snapshots))
	return models.FromDomainSnapshotList(snapshots), nil
}

// PurgeBefore удаляет снапшоты, созданные раньше указанного момента
func (s *Service) PurgeBefore(ctx context.Context, before time.Time) (*models.PurgeResponse, error) {
	if before.IsZero() {
		return nil, fmt.Errorf("%w: purge boundary must be set", ErrInvalidInput)
	}

	deleted, err := s.repo.PurgeBefore(ctx, before)
	if err != nil {
		s.logger.Error("PurgeBefore: failed to purge snapshots before %s: %v", before.Format(time.RFC3339), err)
		return nil, fmt.Errorf("%w: PurgeBefore - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("PurgeBefore: deleted %d snapshots created before %s", deleted, before.Format(time.RFC3339))
	return &models.PurgeResponse{Deleted: deleted}, nil
}
