package preview_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректной конфигурации расписания
	ErrInvalidInput = errors.New("invalid schedule config")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
