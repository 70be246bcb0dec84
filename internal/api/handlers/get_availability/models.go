package get_availability

import (
	"strconv"
	"time"

	"github.com/m04kA/SRF-AvailabilityService/internal/domain"
	getAvailability "github.com/m04kA/SRF-AvailabilityService/internal/usecase/get_availability"
	"github.com/m04kA/SRF-AvailabilityService/pkg/ptr"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	FacilityKey        string                 `json:"facilityKey"`
	FacilityName       string                 `json:"facilityName"`
	BookingURL         string                 `json:"bookingUrl"`
	Date               string                 `json:"date"`
	MinDurationMinutes int                    `json:"minDurationMinutes"`
	Resources          []ResourceAvailability `json:"resources"`
}

// ResourceAvailability свободное время одного поля
type ResourceAvailability struct {
	ResourceID       int64   `json:"resourceId"`
	ResourceName     string  `json:"resourceName"`
	WindowOpen       string  `json:"windowOpen,omitempty"`
	WindowClose      string  `json:"windowClose,omitempty"`
	BookedCount      int     `json:"bookedCount"`
	Blocks           []Block `json:"blocks"`
	TotalFreeMinutes int     `json:"totalFreeMinutes"`
	SnapshotID       *int64  `json:"snapshotId,omitempty"`
}

// Block свободный блок времени
type Block struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	DurationMinutes int    `json:"durationMinutes"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	resources := make([]ResourceAvailability, len(resp.Resources))
	for i, res := range resp.Resources {
		blocks := make([]Block, len(res.Blocks))
		for j, b := range res.Blocks {
			blocks[j] = Block{
				Start:           b.Start,
				End:             b.End,
				DurationMinutes: b.DurationMinutes,
			}
		}
		resources[i] = ResourceAvailability{
			ResourceID:       res.ResourceID,
			ResourceName:     res.ResourceName,
			WindowOpen:       res.WindowOpen,
			WindowClose:      res.WindowClose,
			BookedCount:      res.BookedCount,
			Blocks:           blocks,
			TotalFreeMinutes: res.TotalFreeMinutes,
			SnapshotID:       res.SnapshotID,
		}
	}

	return &AvailabilityResponse{
		FacilityKey:        resp.FacilityKey,
		FacilityName:       resp.FacilityName,
		BookingURL:         resp.BookingURL,
		Date:               resp.Date.Format(domain.DateFormat),
		MinDurationMinutes: resp.MinDurationMinutes,
		Resources:          resources,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(facilityKey, dateStr, fieldFilter, minDurationStr, persistStr string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	req := &getAvailability.Request{
		FacilityKey: facilityKey,
		Date:        date,
		FieldFilter: fieldFilter,
	}

	if minDurationStr != "" {
		minDuration, err := strconv.Atoi(minDurationStr)
		if err != nil {
			return nil, err
		}
		req.MinDurationMinutes = ptr.Ptr(minDuration)
	}

	if persistStr != "" {
		persist, err := strconv.ParseBool(persistStr)
		if err != nil {
			return nil, err
		}
		req.Persist = persist
	}

	return req, nil
}
