package get_availability

import "errors"

var (
	// ErrUnknownFacility возвращается при неизвестном ключе площадки
	ErrUnknownFacility = errors.New("unknown facility")

	// ErrResourceNotFound возвращается, когда фильтр по имени поля не нашел ни одного ресурса
	ErrResourceNotFound = errors.New("no resources match the field filter")

	// ErrAuthFailed возвращается при отказе аутентификации на платформе
	ErrAuthFailed = errors.New("booking platform authentication failed")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
