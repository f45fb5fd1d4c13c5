package slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных слотов
	ErrInvalidInput = errors.New("invalid slot data")

	// ErrBatchTooLarge возвращается, если в пачке больше domain.MaxSlotsPerBatch слотов
	ErrBatchTooLarge = errors.New("slot batch too large")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("slots.service: internal error")
)
