package facilities

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SRF-AvailabilityService/internal/domain"
	bondsportsClient "github.com/m04kA/SRF-AvailabilityService/internal/integrations/bondsports"
	"github.com/m04kA/SRF-AvailabilityService/internal/service/facilities/models"
)

// Service сервис для чтения данных площадок с букинг-платформы
type Service struct {
	client BondSportsClient
	logger Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(client BondSportsClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// GetFacilityInfo получает данные площадки и список её полей
func (s *Service) GetFacilityInfo(ctx context.Context, facilityKey string) (*models.FacilityInfoResponse, error) {
	s.logger.Info("GetFacilityInfo: fetching facility key=%s", facilityKey)

	facility, ok := domain.FacilityByKey(facilityKey)
	if !ok {
		s.logger.Warn("GetFacilityInfo: unknown facility key=%s", facilityKey)
		return nil, ErrUnknownFacility
	}

	vendorFacility, err := s.client.GetFacility(ctx, facility.FacilityID)
	if err != nil {
		if errors.Is(err, bondsportsClient.ErrFacilityNotFound) {
			s.logger.Warn("GetFacilityInfo: facility id=%d not found on platform", facility.FacilityID)
			return nil, ErrFacilityNotFound
		}
		s.logger.Error("GetFacilityInfo: failed to get facility id=%d: %v", facility.FacilityID, err)
		return nil, fmt.Errorf("%w: GetFacilityInfo - client error: %v", ErrInternal, err)
	}

	resources, err := s.client.GetFacilityResources(ctx, facility.OrganizationID, facility.FacilityID)
	if err != nil {
		s.logger.Error("GetFacilityInfo: failed to get resources for facility id=%d: %v", facility.FacilityID, err)
		return nil, fmt.Errorf("%w: GetFacilityInfo - client error: %v", ErrInternal, err)
	}

	s.logger.Info("GetFacilityInfo: successfully fetched facility key=%s with %d resources", facilityKey, len(resources))
	return &models.FacilityInfoResponse{
		Key:            facility.Key,
		Name:           facility.Name,
		FacilityID:     facility.FacilityID,
		OrganizationID: facility.OrganizationID,
		Timezone:       vendorFacility.Timezone,
		BookingURL:     facility.BookingURL,
		Resources:      models.FromVendorResources(resources),
	}, nil
}

// ListResources получает поля площадки с опциональным фильтром по имени
// Фильтр - частичное совпадение без учета регистра
func (s *Service) ListResources(ctx context.Context, facilityKey string, nameFilter string) ([]models.ResourceInfo, error) {
	facility, ok := domain.FacilityByKey(facilityKey)
	if !ok {
		s.logger.Warn("ListResources: unknown facility key=%s", facilityKey)
		return nil, ErrUnknownFacility
	}

	resources, err := s.client.GetFacilityResources(ctx, facility.OrganizationID, facility.FacilityID)
	if err != nil {
		s.logger.Error("ListResources: failed to get resources for facility id=%d: %v", facility.FacilityID, err)
		return nil, fmt.Errorf("%w: ListResources - client error: %v", ErrInternal, err)
	}

	if nameFilter != "" {
		filtered := make([]bondsportsClient.Resource, 0, len(resources))
		for _, res := range resources {
			if strings.Contains(strings.ToLower(res.Name), strings.ToLower(nameFilter)) {
				filtered = append(filtered, res)
			}
		}
		resources = filtered
	}

	s.logger.Info("ListResources: facility key=%s, filter=%q, found %d resources", facilityKey, nameFilter, len(resources))
	return models.FromVendorResources(resources), nil
}

// GetOperatingHours получает операционные часы ресурса по дням недели
func (s *Service) GetOperatingHours(ctx context.Context, facilityKey string, resourceID int64) (*models.OperatingHoursResponse, error) {
	s.logger.Info("GetOperatingHours: facility key=%s, resource id=%d", facilityKey, resourceID)

	if _, ok := domain.FacilityByKey(facilityKey); !ok {
		s.logger.Warn("GetOperatingHours: unknown facility key=%s", facilityKey)
		return nil, ErrUnknownFacility
	}

	resource, err := s.client.GetResource(ctx, resourceID)
	if err != nil {
		if errors.Is(err, bondsportsClient.ErrResourceNotFound) {
			s.logger.Warn("GetOperatingHours: resource id=%d not found", resourceID)
			return nil, ErrResourceNotFound
		}
		s.logger.Error("GetOperatingHours: failed to get resource id=%d: %v", resourceID, err)
		return nil, fmt.Errorf("%w: GetOperatingHours - client error: %v", ErrInternal, err)
	}

	return &models.OperatingHoursResponse{
		ResourceID:   resource.ID,
		ResourceName: resource.Name,
		Hours:        models.FromVendorActivityTimes(resource.ActivityTimes),
	}, nil
}

// GetResourcePackages получает пакеты аренды ресурса с ценами
func (s *Service) GetResourcePackages(ctx context.Context, facilityKey string, resourceID int64) (*models.PackagesResponse, error) {
	s.logger.Info("GetResourcePackages: facility key=%s, resource id=%d", facilityKey, resourceID)

	if _, ok := domain.FacilityByKey(facilityKey); !ok {
		s.logger.Warn("GetResourcePackages: unknown facility key=%s", facilityKey)
		return nil, ErrUnknownFacility
	}

	packages, err := s.client.GetResourcePackages(ctx, resourceID)
	if err != nil {
		if errors.Is(err, bondsportsClient.ErrResourceNotFound) {
			s.logger.Warn("GetResourcePackages: resource id=%d not found", resourceID)
			return nil, ErrResourceNotFound
		}
		s.logger.Error("GetResourcePackages: failed to get packages for resource id=%d: %v", resourceID, err)
		return nil, fmt.Errorf("%w: GetResourcePackages - client error: %v", ErrInternal, err)
	}

	return models.FromVendorPackages(resourceID, packages), nil
}
