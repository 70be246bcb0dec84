package snapshots

import "errors"

var (
	// ErrSnapshotNotFound возвращается, когда снапшот не найден
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrUnknownFacility возвращается при неизвестном ключе площадки
	ErrUnknownFacility = errors.New("unknown facility")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
