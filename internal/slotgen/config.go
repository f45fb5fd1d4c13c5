package slotgen

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

// ScheduleConfig описание недельного расписания для одной генерации.
// Создается на каждый запрос и нигде не хранится.
type ScheduleConfig struct {
	DurationMinutes int      // Длительность слота
	AddonMinutes    int      // Смещение addon-слота, 0 - без addon
	GapMinutes      int      // Перерыв между базовыми слотами
	StartTime       string   // Начало рабочего дня в свободном формате ("9am", "09:00")
	EndTime         string   // Последнее допустимое время начала слота (включительно)
	IncludeAddon    bool     // Генерировать ли addon-слоты
	Weekdays        []string // "Mon".."Sun", пусто - только BaseDate
	BaseDate        time.Time
}

// Validate проверяет структурную корректность конфигурации.
// Время начала и конца здесь не проверяется: невалидное время дает пустой результат с тегом OutcomeInvalidTime.
func (c *ScheduleConfig) Validate() error {
	_, err := c.validate()
	return err
}

func (c *ScheduleConfig) validate() ([]time.Weekday, error) {
	if c.DurationMinutes < domain.MinSlotDurationMinutes || c.DurationMinutes > domain.MaxSlotDurationMinutes {
		return nil, fmt.Errorf("%w: durationMinutes must be between %d and %d",
			ErrInvalidConfig, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if c.GapMinutes < 0 || c.GapMinutes > domain.MaxGapMinutes {
		return nil, fmt.Errorf("%w: gapMinutes must be between 0 and %d", ErrInvalidConfig, domain.MaxGapMinutes)
	}

	if c.AddonMinutes < 0 || c.AddonMinutes > domain.MaxAddonMinutes {
		return nil, fmt.Errorf("%w: addonMinutes must be between 0 and %d", ErrInvalidConfig, domain.MaxAddonMinutes)
	}

	if c.BaseDate.IsZero() {
		return nil, fmt.Errorf("%w: baseDate is required", ErrInvalidConfig)
	}

	weekdays, err := ParseWeekdays(c.Weekdays)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return weekdays, nil
}
