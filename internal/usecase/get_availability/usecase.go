package get_availability

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SRF-AvailabilityService/internal/domain"
	bondsportsClient "github.com/m04kA/SRF-AvailabilityService/internal/integrations/bondsports"
	"github.com/m04kA/SRF-AvailabilityService/pkg/ptr"
)

// UseCase use case расчёта свободных блоков времени на полях площадки
type UseCase struct {
	client       BondSportsClient
	credsSource  CredentialsSource
	snapshotRepo SnapshotRepository // может быть nil, если хранение отключено
	txManager    TransactionManager // может быть nil, если хранение отключено
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// snapshotRepo и txManager могут быть nil - тогда Persist игнорируется
func NewUseCase(
	client BondSportsClient,
	credsSource CredentialsSource,
	snapshotRepo SnapshotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		client:       client,
		credsSource:  credsSource,
		snapshotRepo: snapshotRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет расчёт свободного времени
//
// Шаги: ресурсы площадки с операционными часами, забронированные слоты
// на дату, затем для каждого поля - свободные блоки между бронированиями
// в пределах операционного окна
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: facility=%s, date=%s, filter=%q",
		req.FacilityKey, req.Date.Format(domain.DateFormat), req.FieldFilter)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	facility, ok := domain.FacilityByKey(req.FacilityKey)
	if !ok {
		uc.logger.Warn("GetAvailability: unknown facility key=%s", req.FacilityKey)
		return nil, ErrUnknownFacility
	}

	// Явный ноль допустим - тогда возвращаются все промежутки
	minDuration := domain.DefaultMinBlockMinutes
	if req.MinDurationMinutes != nil {
		minDuration = *req.MinDurationMinutes
	}

	// Дата в прошлом не ошибка - расчёт по истории тоже полезен, но предупреждаем
	now := uc.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if req.Date.Before(today) {
		uc.logger.Warn("GetAvailability: requested date %s is in the past", req.Date.Format(domain.DateFormat))
	}

	// 2. Получаем ресурсы площадки с операционными часами
	resources, err := uc.client.GetFacilityResources(ctx, facility.OrganizationID, facility.FacilityID)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get resources for facility id=%d: %v", facility.FacilityID, err)
		return nil, fmt.Errorf("%w: failed to get resources: %v", ErrInternal, err)
	}

	// 3. Фильтр по имени поля (частичное совпадение без учета регистра)
	if req.FieldFilter != "" {
		filtered := make([]bondsportsClient.Resource, 0, len(resources))
		for _, res := range resources {
			if strings.Contains(strings.ToLower(res.Name), strings.ToLower(req.FieldFilter)) {
				filtered = append(filtered, res)
			}
		}
		if len(filtered) == 0 {
			uc.logger.Warn("GetAvailability: no resources match filter=%q at facility=%s", req.FieldFilter, req.FacilityKey)
			return nil, ErrResourceNotFound
		}
		resources = filtered
	}

	// 4. Забронированные слоты площадки на дату
	slots, err := uc.fetchSlots(ctx, facility.FacilityID, req.Date)
	if err != nil {
		return nil, err
	}

	// Группируем слоты по полю
	slotsBySpace := make(map[int64][]bondsportsClient.Slot, len(resources))
	for _, slot := range slots {
		slotsBySpace[slot.SpaceID] = append(slotsBySpace[slot.SpaceID], slot)
	}

	// 5. Расчёт свободных блоков по каждому полю
	weekday := req.Date.Weekday()
	result := make([]ResourceAvailability, 0, len(resources))

	for _, res := range resources {
		window := operatingWindowFor(res, weekday)
		bookings := bookedIntervals(slotsBySpace[res.ID])
		blocks := domain.ComputeFreeBlocks(window, bookings, minDuration)

		availability := ResourceAvailability{
			ResourceID:   res.ID,
			ResourceName: res.Name,
			BookedCount:  len(bookings),
			Blocks:       make([]Block, len(blocks)),
		}
		if window != nil {
			availability.WindowOpen = window.Open.Clock()
			availability.WindowClose = window.Close.Clock()
		}
		for i, b := range blocks {
			availability.Blocks[i] = Block{
				Start:           b.Start.Clock(),
				End:             b.End.Clock(),
				DurationMinutes: b.DurationMinutes,
			}
			availability.TotalFreeMinutes += b.DurationMinutes
		}

		result = append(result, availability)

		// 6. Сохраняем снапшот, если запрошено и хранение включено
		if req.Persist && uc.snapshotRepo != nil && uc.txManager != nil {
			snapshotID, err := uc.persistSnapshot(ctx, facility, res, req.Date, window, minDuration, len(bookings), blocks)
			if err != nil {
				uc.logger.Error("GetAvailability: failed to persist snapshot for resource id=%d: %v", res.ID, err)
				return nil, fmt.Errorf("%w: failed to persist snapshot: %v", ErrInternal, err)
			}
			result[len(result)-1].SnapshotID = ptr.Ptr(snapshotID)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ResourceName < result[j].ResourceName
	})

	uc.logger.Info("GetAvailability: facility=%s, date=%s, calculated %d resources",
		req.FacilityKey, req.Date.Format(domain.DateFormat), len(result))

	return &Response{
		FacilityKey:        facility.Key,
		FacilityName:       facility.Name,
		BookingURL:         facility.BookingURL,
		Date:               req.Date,
		MinDurationMinutes: minDuration,
		Resources:          result,
	}, nil
}

// fetchSlots получает забронированные слоты на дату
// При отказе аутентификации сбрасывает кеш учетных данных и пробует ещё раз
func (uc *UseCase) fetchSlots(ctx context.Context, facilityID int64, date time.Time) ([]bondsportsClient.Slot, error) {
	day := date.Format(domain.DateFormat)

	creds, err := uc.credsSource.Credentials(ctx)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to obtain credentials: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrAuthFailed, err)
	}

	slots, err := uc.client.GetVenueSlots(ctx, creds, facilityID, day, day)
	if errors.Is(err, bondsportsClient.ErrAuthFailed) {
		uc.logger.Warn("GetAvailability: credentials rejected, retrying with fresh login")
		uc.credsSource.Invalidate()

		creds, err = uc.credsSource.Credentials(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrAuthFailed, err)
		}
		slots, err = uc.client.GetVenueSlots(ctx, creds, facilityID, day, day)
	}
	if err != nil {
		if errors.Is(err, bondsportsClient.ErrAuthFailed) {
			return nil, ErrAuthFailed
		}
		uc.logger.Error("GetAvailability: failed to get venue slots: %v", err)
		return nil, fmt.Errorf("%w: failed to get venue slots: %v", ErrInternal, err)
	}

	return slots, nil
}

// persistSnapshot сохраняет результат расчёта в сериализуемой транзакции
func (uc *UseCase) persistSnapshot(
	ctx context.Context,
	facility domain.Facility,
	res bondsportsClient.Resource,
	date time.Time,
	window *domain.OperatingWindow,
	minDuration, bookedCount int,
	blocks []domain.FreeBlock,
) (int64, error) {
	snap := &domain.AvailabilitySnapshot{
		FacilityKey:    facility.Key,
		FacilityID:     facility.FacilityID,
		OrganizationID: facility.OrganizationID,
		ResourceID:     res.ID,
		ResourceName:   res.Name,
		Date:           date,
		MinDuration:    minDuration,
		BookedCount:    bookedCount,
		Blocks:         blocks,
	}
	if window != nil {
		snap.WindowOpen = window.Open
		snap.WindowClose = window.Close
	}

	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		_, err := uc.snapshotRepo.Create(ctx, snap)
		return err
	})
	if err != nil {
		return 0, err
	}

	return snap.ID, nil
}

// operatingWindowFor возвращает операционное окно ресурса на день недели
// nil означает, что часы на этот день неизвестны
func operatingWindowFor(res bondsportsClient.Resource, weekday time.Weekday) *domain.OperatingWindow {
	for _, at := range res.ActivityTimes {
		day, ok := bondsportsClient.WeekdayFromVendor(at.DayOfWeek)
		if !ok || day != weekday {
			continue
		}

		open, err := domain.ParseTimeOfDay(at.Open)
		if err != nil {
			continue
		}
		closeTime, err := domain.ParseTimeOfDay(at.Close)
		if err != nil {
			continue
		}

		return &domain.OperatingWindow{Open: open, Close: closeTime}
	}
	return nil
}

// bookedIntervals конвертирует слоты платформы в занятые интервалы
// Слоты с нечитаемым временем пропускаются
func bookedIntervals(slots []bondsportsClient.Slot) []domain.BookedInterval {
	intervals := make([]domain.BookedInterval, 0, len(slots))
	for _, slot := range slots {
		start, err := domain.ParseTimeOfDay(slot.Start())
		if err != nil {
			continue
		}
		end, err := domain.ParseTimeOfDay(slot.End())
		if err != nil {
			continue
		}
		intervals = append(intervals, domain.BookedInterval{Start: start, End: end})
	}
	return intervals
}
