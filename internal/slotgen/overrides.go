package slotgen

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/pkg/ptr"
)

// Overrides параметры генерации из запроса. nil означает "взять из шаблона терапевта".
type Overrides struct {
	DurationMinutes *int
	AddonMinutes    *int
	GapMinutes      *int
	StartTime       *string
	EndTime         *string
	IncludeAddon    *bool
	Weekdays        []string // nil - из шаблона, пустой слайс - только BaseDate
	BaseDate        *time.Time
}

// Resolve собирает ScheduleConfig из запроса и шаблона (tpl может быть nil).
// Без шаблона обязательна только длительность слота; незаданные время начала и конца
// дают OutcomeInvalidTime при генерации. BaseDate по умолчанию today.
func Resolve(o Overrides, tpl *domain.ScheduleTemplate, today time.Time) (ScheduleConfig, error) {
	var cfg ScheduleConfig

	if tpl != nil {
		cfg = ScheduleConfig{
			DurationMinutes: tpl.DurationMinutes,
			AddonMinutes:    tpl.AddonMinutes,
			GapMinutes:      tpl.GapMinutes,
			StartTime:       tpl.StartTime.String(),
			EndTime:         tpl.EndTime.String(),
			IncludeAddon:    tpl.IncludeAddon,
			Weekdays:        tpl.Weekdays,
		}
	} else if o.DurationMinutes == nil {
		return ScheduleConfig{}, fmt.Errorf("%w: durationMinutes is required when no schedule template is saved", ErrInvalidConfig)
	}

	cfg.DurationMinutes = ptr.Deref(o.DurationMinutes, cfg.DurationMinutes)
	cfg.AddonMinutes = ptr.Deref(o.AddonMinutes, cfg.AddonMinutes)
	cfg.GapMinutes = ptr.Deref(o.GapMinutes, cfg.GapMinutes)
	cfg.StartTime = ptr.Deref(o.StartTime, cfg.StartTime)
	cfg.EndTime = ptr.Deref(o.EndTime, cfg.EndTime)
	cfg.IncludeAddon = ptr.Deref(o.IncludeAddon, cfg.IncludeAddon)
	if o.Weekdays != nil {
		cfg.Weekdays = o.Weekdays
	}
	cfg.BaseDate = domain.DateOnly(ptr.Deref(o.BaseDate, today))

	return cfg, cfg.Validate()
}
