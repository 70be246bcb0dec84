package get_rental_grid

import (
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SRF-AvailabilityService/internal/domain"
	getRentalGrid "github.com/m04kA/SRF-AvailabilityService/internal/usecase/get_rental_grid"
)

const (
	// defaultSportCode код Soccer на платформе - сайт всегда шлет его
	// для этого эндпоинта
	defaultSportCode = 4

	// maxGridDays платформа отвечает на разумное число дат за раз
	maxGridDays = 14
)

// RentalGridResponse HTTP response model
type RentalGridResponse struct {
	FacilityKey  string    `json:"facilityKey"`
	FacilityName string    `json:"facilityName"`
	Days         []DayGrid `json:"days"`
}

// DayGrid доступность полей на одну дату
type DayGrid struct {
	Date      string         `json:"date"`
	Resources []ResourceGrid `json:"resources"`
}

// ResourceGrid доступные блоки одного поля
type ResourceGrid struct {
	ResourceID       int64   `json:"resourceId"`
	ResourceName     string  `json:"resourceName,omitempty"`
	Blocks           []Block `json:"blocks"`
	TotalOpenMinutes int     `json:"totalOpenMinutes"`
}

// Block непрерывный доступный блок
type Block struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	DurationMinutes int    `json:"durationMinutes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getRentalGrid.Response) *RentalGridResponse {
	days := make([]DayGrid, len(resp.Days))
	for i, day := range resp.Days {
		resources := make([]ResourceGrid, len(day.Resources))
		for j, res := range day.Resources {
			blocks := make([]Block, len(res.Blocks))
			for k, b := range res.Blocks {
				blocks[k] = Block{
					Start:           b.Start,
					End:             b.End,
					DurationMinutes: b.DurationMinutes,
				}
			}
			resources[j] = ResourceGrid{
				ResourceID:       res.ResourceID,
				ResourceName:     res.ResourceName,
				Blocks:           blocks,
				TotalOpenMinutes: res.TotalOpenMinutes,
			}
		}
		days[i] = DayGrid{
			Date:      day.Date,
			Resources: resources,
		}
	}

	return &RentalGridResponse{
		FacilityKey:  resp.FacilityKey,
		FacilityName: resp.FacilityName,
		Days:         days,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
// days - число последовательных дат начиная с date
func ToUseCaseRequest(facilityKey, dateStr, daysStr, sportStr string) (*getRentalGrid.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	days := 1
	if daysStr != "" {
		days, err = strconv.Atoi(daysStr)
		if err != nil {
			return nil, err
		}
	}
	// Границы проверяются до аллокации среза дат
	if days < 1 || days > maxGridDays {
		return nil, fmt.Errorf("days must be between 1 and %d, got %d", maxGridDays, days)
	}

	sport := defaultSportCode
	if sportStr != "" {
		sport, err = strconv.Atoi(sportStr)
		if err != nil {
			return nil, err
		}
	}

	dates := make([]time.Time, 0, days)
	for i := 0; i < days; i++ {
		dates = append(dates, date.AddDate(0, 0, i))
	}

	return &getRentalGrid.Request{
		FacilityKey: facilityKey,
		Dates:       dates,
		Sport:       sport,
	}, nil
}
