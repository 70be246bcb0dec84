package get_rental_grid

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SRF-AvailabilityService/internal/domain"
	bondsportsClient "github.com/m04kA/SRF-AvailabilityService/internal/integrations/bondsports"
)

// UseCase use case получения сетки аренды - того же представления,
// которым пользуется сайт платформы для показа доступных слотов
type UseCase struct {
	client      BondSportsClient
	credsSource CredentialsSource
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client BondSportsClient, credsSource CredentialsSource, logger Logger) *UseCase {
	return &UseCase{
		client:      client,
		credsSource: credsSource,
		logger:      logger,
	}
}

// Execute выполняет запрос сетки аренды
//
// Ячейки с isClosed = false группируются в непрерывные блоки по каждому полю
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetRentalGrid: validation failed: %v", err)
		return nil, err
	}

	facility, ok := domain.FacilityByKey(req.FacilityKey)
	if !ok {
		uc.logger.Warn("GetRentalGrid: unknown facility key=%s", req.FacilityKey)
		return nil, ErrUnknownFacility
	}

	dates := make([]string, len(req.Dates))
	for i, d := range req.Dates {
		dates[i] = d.Format(domain.DateFormat)
	}

	uc.logger.Info("GetRentalGrid: facility=%s, dates=%v, sport=%d", req.FacilityKey, dates, req.Sport)

	// Имена полей - для обогащения ответа, отказ не фатален
	names := uc.resourceNames(ctx, facility)

	grid, err := uc.fetchGrid(ctx, facility, dates, req.Sport)
	if err != nil {
		return nil, err
	}

	days := make([]DayGrid, 0, len(grid))
	for _, date := range dates {
		cells, ok := grid[date]
		if !ok {
			continue
		}
		days = append(days, DayGrid{
			Date:      date,
			Resources: groupByResource(cells, names),
		})
	}

	uc.logger.Info("GetRentalGrid: facility=%s, built grid for %d days", req.FacilityKey, len(days))

	return &Response{
		FacilityKey:  facility.Key,
		FacilityName: facility.Name,
		Days:         days,
	}, nil
}

// fetchGrid запрашивает сетку, при отказе аутентификации перелогинивается один раз
func (uc *UseCase) fetchGrid(ctx context.Context, facility domain.Facility, dates []string, sport int) (map[string][]bondsportsClient.GridSlot, error) {
	creds, err := uc.credsSource.Credentials(ctx)
	if err != nil {
		uc.logger.Error("GetRentalGrid: failed to obtain credentials: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}

	grid, err := uc.client.CheckAvailability(ctx, creds, facility.OrganizationID, facility.FacilityID, dates, sport)
	if errors.Is(err, bondsportsClient.ErrAuthFailed) {
		uc.logger.Warn("GetRentalGrid: credentials rejected, retrying with fresh login")
		uc.credsSource.Invalidate()

		creds, err = uc.credsSource.Credentials(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrAuthFailed, err)
		}
		grid, err = uc.client.CheckAvailability(ctx, creds, facility.OrganizationID, facility.FacilityID, dates, sport)
	}
	if err != nil {
		if errors.Is(err, bondsportsClient.ErrAuthFailed) {
			return nil, ErrAuthFailed
		}
		uc.logger.Error("GetRentalGrid: failed to check availability: %v", err)
		return nil, fmt.Errorf("%w: failed to check availability: %v", ErrInternal, err)
	}

	return grid, nil
}

// resourceNames строит отображение ID поля в имя
func (uc *UseCase) resourceNames(ctx context.Context, facility domain.Facility) map[int64]string {
	resources, err := uc.client.GetFacilityResources(ctx, facility.OrganizationID, facility.FacilityID)
	if err != nil {
		uc.logger.Warn("GetRentalGrid: failed to get resource names: %v", err)
		return nil
	}

	names := make(map[int64]string, len(resources))
	for _, res := range resources {
		names[res.ID] = res.Name
	}
	return names
}

// groupByResource собирает открытые ячейки в блоки по каждому полю
func groupByResource(cells []bondsportsClient.GridSlot, names map[int64]string) []ResourceGrid {
	cellsByResource := make(map[int64][]domain.GridCell)
	for _, cell := range cells {
		if cell.IsClosed {
			continue
		}

		open, err := domain.ParseTimeOfDay(cell.Open)
		if err != nil {
			continue
		}
		closeTime, err := domain.ParseTimeOfDay(cell.Close)
		if err != nil {
			continue
		}

		cellsByResource[cell.ParentID] = append(cellsByResource[cell.ParentID], domain.GridCell{
			Open:  open,
			Close: closeTime,
		})
	}

	result := make([]ResourceGrid, 0, len(cellsByResource))
	for resourceID, resourceCells := range cellsByResource {
		blocks := domain.GroupContiguousCells(resourceCells)

		grid := ResourceGrid{
			ResourceID:   resourceID,
			ResourceName: names[resourceID],
			Blocks:       make([]Block, len(blocks)),
		}
		for i, b := range blocks {
			grid.Blocks[i] = Block{
				Start:           b.Start.Clock(),
				End:             b.End.Clock(),
				DurationMinutes: b.DurationMinutes,
			}
			grid.TotalOpenMinutes += b.DurationMinutes
		}

		result = append(result, grid)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ResourceID < result[j].ResourceID
	})

	return result
}
