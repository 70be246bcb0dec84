package get_rental_grid

import "errors"

var (
	// ErrUnknownFacility возвращается при неизвестном ключе площадки
	ErrUnknownFacility = errors.New("unknown facility")

	// ErrAuthFailed возвращается при отказе аутентификации на платформе
	ErrAuthFailed = errors.New("booking platform authentication failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
