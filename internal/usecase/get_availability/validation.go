package get_availability

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.FacilityKey == "" {
		return fmt.Errorf("%w: facility key is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.MinDurationMinutes != nil && *req.MinDurationMinutes < 0 {
		return fmt.Errorf("%w: minimum duration must not be negative", ErrInvalidInput)
	}

	return nil
}
