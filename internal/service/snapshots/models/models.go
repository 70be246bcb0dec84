package models

import (
	"time"

	"github.com/m04kA/SRF-AvailabilityService/internal/domain"
)

// Request модели

// ListSnapshotsRequest запрос на получение истории снапшотов
type ListSnapshotsRequest struct {
	FacilityKey string     `json:"facilityKey"`
	ResourceID  *int64     `json:"resourceId,omitempty"` // Фильтр по ресурсу (опционально)
	Date        *time.Time `json:"date,omitempty"`       // Фильтр по дате расчёта (опционально)
	Limit       uint64     `json:"limit,omitempty"`      // Ограничение количества (0 = без ограничения)
}

// Response модели

// BlockResponse свободный блок в снапшоте
type BlockResponse struct {
	Start           string `json:"start"` // "HH:MM"
	End             string `json:"end"`   // "HH:MM"
	DurationMinutes int    `json:"durationMinutes"`
}

// SnapshotResponse ответ с данными снапшота
type SnapshotResponse struct {
	ID               int64           `json:"id"`
	FacilityKey      string          `json:"facilityKey"`
	FacilityID       int64           `json:"facilityId"`
	OrganizationID   int64           `json:"organizationId"`
	ResourceID       int64           `json:"resourceId"`
	ResourceName     string          `json:"resourceName"`
	Date             string          `json:"date"`        // "2026-02-15"
	WindowOpen       string          `json:"windowOpen"`  // "HH:MM"
	WindowClose      string          `json:"windowClose"` // "HH:MM"
	MinDuration      int             `json:"minDurationMinutes"`
	BookedCount      int             `json:"bookedCount"`
	TotalFreeMinutes int             `json:"totalFreeMinutes"`
	Blocks           []BlockResponse `json:"blocks"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// SnapshotListResponse ответ со списком снапшотов
type SnapshotListResponse struct {
	Snapshots []SnapshotResponse `json:"snapshots"`
}

// PurgeResponse ответ на удаление устаревших снапшотов
type PurgeResponse struct {
	Deleted int64 `json:"deleted"`
}

// Методы конвертации

// FromDomainSnapshot конвертирует domain модель в DTO
func FromDomainSnapshot(s *domain.AvailabilitySnapshot) *SnapshotResponse {
	if s == nil {
		return nil
	}

	blocks := make([]BlockResponse, len(s.Blocks))
	for i, b := range s.Blocks {
		blocks[i] = BlockResponse{
			Start:           b.Start.Clock(),
			End:             b.End.Clock(),
			DurationMinutes: b.DurationMinutes,
		}
	}

	return &SnapshotResponse{
		ID:               s.ID,
		FacilityKey:      s.FacilityKey,
		FacilityID:       s.FacilityID,
		OrganizationID:   s.OrganizationID,
		ResourceID:       s.ResourceID,
		ResourceName:     s.ResourceName,
		Date:             s.Date.Format(domain.DateFormat),
		WindowOpen:       s.WindowOpen.Clock(),
		WindowClose:      s.WindowClose.Clock(),
		MinDuration:      s.MinDuration,
		BookedCount:      s.BookedCount,
		TotalFreeMinutes: s.TotalFreeMinutes(),
		Blocks:           blocks,
		CreatedAt:        s.CreatedAt,
	}
}

// FromDomainSnapshotList конвертирует список domain моделей в DTO
func FromDomainSnapshotList(snapshots []*domain.AvailabilitySnapshot) *SnapshotListResponse {
	resp := &SnapshotListResponse{
		Snapshots: make([]SnapshotResponse, 0, len(snapshots)),
	}
	for _, snap := range snapshots {
		if dto := FromDomainSnapshot(snap); dto != nil {
			resp.Snapshots = append(resp.Snapshots, *dto)
		}
	}
	return resp
}
