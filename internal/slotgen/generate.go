// Package slotgen генерирует слоты календаря терапевта по компактному недельному расписанию.
// Все функции чистые: без ввода-вывода, без обращения к текущему времени.
package slotgen

import (
	"time"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// Outcome тег результата генерации
type Outcome string

const (
	OutcomeOK          Outcome = "ok"
	OutcomeInvalidTime Outcome = "invalid_time" // Граница не распознана нормализатором
	OutcomeEmptyRange  Outcome = "empty_range"  // start > end
)

// Result результат генерации
type Result struct {
	Outcome Outcome
	Dates   []time.Time
	Times   []types.TimeString
	Slots   []*domain.Slot
}

// IsEmpty возвращает true, если не будет создано ни одного слота
func (r *Result) IsEmpty() bool {
	return len(r.Slots) == 0
}

// Generate валидирует конфигурацию и строит слоты.
// Ошибка возвращается только для структурно некорректной конфигурации (ErrInvalidConfig).
// Проблемы с временем дают пустой Result с соответствующим Outcome.
func Generate(therapistID int64, cfg ScheduleConfig) (*Result, error) {
	weekdays, err := cfg.validate()
	if err != nil {
		return nil, err
	}

	empty := func(outcome Outcome) *Result {
		return &Result{
			Outcome: outcome,
			Dates:   []time.Time{},
			Times:   []types.TimeString{},
			Slots:   []*domain.Slot{},
		}
	}

	start, err := types.Normalize(cfg.StartTime)
	if err != nil {
		return empty(OutcomeInvalidTime), nil
	}
	end, err := types.Normalize(cfg.EndTime)
	if err != nil {
		return empty(OutcomeInvalidTime), nil
	}

	base := sequence(start, end, cfg.DurationMinutes+cfg.GapMinutes)
	if len(base) == 0 {
		return empty(OutcomeEmptyRange), nil
	}

	times := ExpandAddons(base, cfg.AddonMinutes, end, cfg.IncludeAddon)
	dates := ResolveDates(cfg.BaseDate, weekdays)

	return &Result{
		Outcome: OutcomeOK,
		Dates:   dates,
		Times:   times,
		Slots:   Materialize(therapistID, dates, times, cfg.DurationMinutes),
	}, nil
}
