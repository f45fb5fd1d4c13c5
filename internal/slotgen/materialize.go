package slotgen

import (
	"time"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/pkg/types"
)

// Materialize строит слоты как декартово произведение дат и времен:
// внешний цикл по датам, внутренний по временам. Все слоты в статусе available.
// Конец слота = начало + durationMinutes; переход через полночь заворачивается (23:30 + 60 = 00:30).
func Materialize(therapistID int64, dates []time.Time, times []types.TimeString, durationMinutes int) []*domain.Slot {
	slots := make([]*domain.Slot, 0, len(dates)*len(times))
	seen := make(map[domain.SlotKey]struct{}, len(dates)*len(times))

	for _, date := range dates {
		for _, start := range times {
			end, err := start.AddMinutesWrapped(durationMinutes)
			if err != nil {
				continue
			}

			slot := &domain.Slot{
				TherapistID: therapistID,
				SlotDate:    domain.DateOnly(date),
				StartTime:   start,
				EndTime:     end,
				Status:      domain.SlotStatusAvailable,
			}

			key := slot.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			slots = append(slots, slot)
		}
	}

	return slots
}
