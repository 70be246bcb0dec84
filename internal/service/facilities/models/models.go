package models

import (
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SRF-AvailabilityService/internal/integrations/bondsports"
	"github.com/m04kA/SRF-AvailabilityService/pkg/types"
)

// FacilityInfoResponse ответ с данными площадки и её полями
type FacilityInfoResponse struct {
	Key            string         `json:"key"`
	Name           string         `json:"name"`
	FacilityID     int64          `json:"facilityId"`
	OrganizationID int64          `json:"organizationId"`
	Timezone       string         `json:"timezone,omitempty"`
	BookingURL     string         `json:"bookingUrl"`
	Resources      []ResourceInfo `json:"resources"`
}

// ResourceInfo краткая информация о ресурсе (поле)
type ResourceInfo struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Status      string `json:"status,omitempty"`
	Description string `json:"description,omitempty"`
}

// DayHours операционные часы на один день недели
type DayHours struct {
	Day   string           `json:"day"`   // "Monday" ... "Sunday"
	Open  types.TimeString `json:"open"`  // "HH:MM"
	Close types.TimeString `json:"close"` // "HH:MM"
}

// OperatingHoursResponse ответ с операционными часами ресурса
type OperatingHoursResponse struct {
	ResourceID   int64      `json:"resourceId"`
	ResourceName string     `json:"resourceName"`
	Hours        []DayHours `json:"hours"`
}

// PackageInfo пакет аренды с ценой
type PackageInfo struct {
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// PackagesResponse ответ с пакетами аренды ресурса
type PackagesResponse struct {
	ResourceID int64         `json:"resourceId"`
	Packages   []PackageInfo `json:"packages"`
}

// FromVendorResources конвертирует ресурсы платформы в DTO
func FromVendorResources(resources []bondsports.Resource) []ResourceInfo {
	result := make([]ResourceInfo, len(resources))
	for i, res := range resources {
		result[i] = ResourceInfo{
			ID:          res.ID,
			Name:        res.Name,
			Type:        res.ResourceType,
			Status:      res.Status,
			Description: res.Description,
		}
	}
	return result
}

// FromVendorActivityTimes конвертирует операционные часы платформы в DTO
// Код дня недели платформы переводится в стандартное имя дня; записи
// с неизвестным кодом отбрасываются. Результат отсортирован с понедельника
func FromVendorActivityTimes(times []bondsports.ActivityTime) []DayHours {
	hours := make([]DayHours, 0, len(times))
	order := make(map[string]int, len(times))

	for _, at := range times {
		weekday, ok := bondsports.WeekdayFromVendor(at.DayOfWeek)
		if !ok {
			continue
		}

		open, err := types.NewTimeStringFromString(at.Open)
		if err != nil {
			continue
		}
		closeTime, err := types.NewTimeStringFromString(normalizeMidnightClose(at.Close))
		if err != nil {
			continue
		}

		name := weekday.String()
		hours = append(hours, DayHours{
			Day:   name,
			Open:  open,
			Close: closeTime,
		})
		order[name] = mondayFirst(weekday)
	}

	sort.SliceStable(hours, func(i, j int) bool {
		return order[hours[i].Day] < order[hours[j].Day]
	})

	return hours
}

// normalizeMidnightClose приводит закрытие "24:00" к "00:00" - часть
// фидов с операционными часами обозначает полночь именно так
func normalizeMidnightClose(s string) string {
	switch strings.TrimSpace(s) {
	case "24:00", "24:00:00":
		return "00:00"
	}
	return s
}

// mondayFirst возвращает порядковый номер дня недели, начиная с понедельника
func mondayFirst(w time.Weekday) int {
	if w == time.Sunday {
		return 6
	}
	return int(w) - 1
}

// FromVendorPackages конвертирует пакеты аренды платформы в DTO
func FromVendorPackages(resourceID int64, packages []bondsports.Package) *PackagesResponse {
	result := &PackagesResponse{
		ResourceID: resourceID,
		Packages:   make([]PackageInfo, len(packages)),
	}
	for i, pkg := range packages {
		result.Packages[i] = PackageInfo{
			Name:            pkg.Name,
			Price:           pkg.Price,
			DurationMinutes: pkg.DurationMinutes,
		}
	}
	return result
}
