package generate_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректной конфигурации расписания
	ErrInvalidInput = errors.New("invalid schedule config")

	// ErrInvalidTime возвращается, если время начала или конца не распознано
	ErrInvalidTime = errors.New("invalid start or end time")

	// ErrEmptyRange возвращается, если расписание не дает ни одного слота
	ErrEmptyRange = errors.New("enter valid start/end time and regenerate")

	// ErrTooManySlots возвращается, если генерация дает слишком большую пачку
	ErrTooManySlots = errors.New("too many slots in one generation")

	// ErrTherapistNotFound возвращается, когда терапевт не найден в справочнике
	ErrTherapistNotFound = errors.New("therapist not found")

	// ErrTherapistInactive возвращается для деактивированного терапевта
	ErrTherapistInactive = errors.New("therapist is inactive")

	// ErrIdempotencyKeyReused возвращается, если ключ идемпотентности уже использован с другим расписанием
	ErrIdempotencyKeyReused = errors.New("idempotency key reused with a different schedule")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
