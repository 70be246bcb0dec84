package facilities

import "errors"

var (
	// ErrUnknownFacility возвращается при неизвестном ключе площадки
	ErrUnknownFacility = errors.New("unknown facility")

	// ErrFacilityNotFound возвращается, когда площадка не найдена на платформе
	ErrFacilityNotFound = errors.New("facility not found")

	// ErrResourceNotFound возвращается, когда ресурс (поле) не найден
	ErrResourceNotFound = errors.New("resource not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
