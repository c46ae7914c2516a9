package blocks

import "errors"

var (
	// ErrBlockNotFound возвращается, когда блокировка не найдена
	ErrBlockNotFound = errors.New("block not found")
	// ErrInvalidTimeRange возвращается, когда конец интервала не позже начала
	ErrInvalidTimeRange = errors.New("block end must be after start")
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")
	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
