package therapistservice

import "errors"

var (
	// ErrTherapistNotFound возвращается, когда терапевт отсутствует в справочнике
	ErrTherapistNotFound = errors.New("therapist not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("therapistservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("therapistservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation.
	// Справочник недоступен, проверка терапевта пропускается.
	ErrServiceDegraded = errors.New("therapistservice unavailable: graceful degradation applied")
)
