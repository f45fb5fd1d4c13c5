package slotgen

import "errors"

var (
	// ErrInvalidConfig возвращается при структурно некорректной конфигурации расписания
	ErrInvalidConfig = errors.New("slotgen: invalid schedule config")

	// ErrUnknownWeekday возвращается для нераспознанной метки дня недели
	ErrUnknownWeekday = errors.New("slotgen: unknown weekday")
)
