package get_rental_grid

import (
	"context"

	getRentalGrid "github.com/m04kA/SRF-AvailabilityService/internal/usecase/get_rental_grid"
)

type GetRentalGridUseCase interface {
	Execute(ctx context.Context, req *getRentalGrid.Request) (*getRentalGrid.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
