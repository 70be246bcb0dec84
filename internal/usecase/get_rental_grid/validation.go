package get_rental_grid

import "fmt"

// maxDatesPerRequest платформа отвечает на разумное число дат за раз
const maxDatesPerRequest = 14

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.FacilityKey == "" {
		return fmt.Errorf("%w: facility key is required", ErrInvalidInput)
	}

	if len(req.Dates) == 0 {
		return fmt.Errorf("%w: at least one date is required", ErrInvalidInput)
	}

	if len(req.Dates) > maxDatesPerRequest {
		return fmt.Errorf("%w: at most %d dates per request", ErrInvalidInput, maxDatesPerRequest)
	}

	for _, d := range req.Dates {
		if d.IsZero() {
			return fmt.Errorf("%w: date is required", ErrInvalidInput)
		}
	}

	if req.Sport < 0 {
		return fmt.Errorf("%w: sport code must not be negative", ErrInvalidInput)
	}

	return nil
}
