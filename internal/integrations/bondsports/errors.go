package bondsports

import "errors"

var (
	// ErrAuthRequired возвращается при вызове защищенного эндпоинта без учетных данных
	ErrAuthRequired = errors.New("authentication required: call Login first or provide a session token")

	// ErrAuthFailed возвращается, когда платформа отклонила учетные данные
	ErrAuthFailed = errors.New("bondsports: authentication failed")

	// ErrFacilityNotFound возвращается, когда площадка не найдена
	ErrFacilityNotFound = errors.New("bondsports: facility not found")

	// ErrResourceNotFound возвращается, когда ресурс (поле) не найден
	ErrResourceNotFound = errors.New("bondsports: resource not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bondsports client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе платформы
	ErrInvalidResponse = errors.New("bondsports client: invalid response")
)
