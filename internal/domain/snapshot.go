package domain

import "time"

// AvailabilitySnapshot is one persisted result of an availability
// calculation for a single resource on a single date.
type AvailabilitySnapshot struct {
	ID             int64
	FacilityKey    string
	FacilityID     int64
	OrganizationID int64
	ResourceID     int64
	ResourceName   string
	Date           time.Time
	WindowOpen     TimeOfDay
	WindowClose    TimeOfDay
	MinDuration    int
	BookedCount    int
	Blocks         []FreeBlock
	CreatedAt      time.Time
}

// TotalFreeMinutes returns the sum of all free block durations.
func (s *AvailabilitySnapshot) TotalFreeMinutes() int {
	total := 0
	for _, b := range s.Blocks {
		total += b.DurationMinutes
	}
	return total
}

// SnapshotFilter фильтр для выборки снапшотов
type SnapshotFilter struct {
	FacilityKey string     // Обязательный параметр
	ResourceID  *int64     // Фильтр по ресурсу (опционально)
	Date        *time.Time // Фильтр по дате расчёта (опционально)
	Limit       uint64     // Ограничение количества записей (0 = без ограничения)
}
