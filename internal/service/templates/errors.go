package templates

import "errors"

var (
	// ErrTemplateNotFound возвращается, когда у терапевта нет шаблона
	ErrTemplateNotFound = errors.New("schedule template not found")

	// ErrTherapistNotFound возвращается, когда терапевт не найден в справочнике
	ErrTherapistNotFound = errors.New("therapist not found")

	// ErrTherapistInactive возвращается для деактивированного терапевта
	ErrTherapistInactive = errors.New("therapist is inactive")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid schedule template")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("templates.service: internal error")
)
