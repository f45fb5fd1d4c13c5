package slotgen

import "github.com/m04kA/SMC-SlotService/pkg/types"

// BaseTimes генерирует времена начала базовых слотов от start до end включительно с шагом duration+gap.
// Пустой результат (не ошибка), если шаг <= 0, start > end или одна из границ не распознана.
func BaseTimes(start, end string, durationMinutes, gapMinutes int) []types.TimeString {
	startTime, err := types.Normalize(start)
	if err != nil {
		return []types.TimeString{}
	}
	endTime, err := types.Normalize(end)
	if err != nil {
		return []types.TimeString{}
	}
	return sequence(startTime, endTime, durationMinutes+gapMinutes)
}

func sequence(start, end types.TimeString, step int) []types.TimeString {
	times := make([]types.TimeString, 0)
	if step <= 0 || start.IsAfter(end) {
		return times
	}

	// Переход через полночь означает, что end уже пройден
	for t := start; !t.IsAfter(end); {
		times = append(times, t)

		next, err := t.AddMinutes(step)
		if err != nil {
			break
		}
		t = next
	}

	return times
}
