package slotgen

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

var weekdayLabels = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tues": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thur": time.Thursday, "thurs": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,
}

// WeekdayLabel возвращает короткую метку дня недели ("Mon".."Sun")
func WeekdayLabel(d time.Weekday) string {
	return d.String()[:3]
}

// ParseWeekdays переводит метки дней недели в time.Weekday (0 = воскресенье).
// Повторы отбрасываются, порядок первого вхождения сохраняется.
func ParseWeekdays(labels []string) ([]time.Weekday, error) {
	result := make([]time.Weekday, 0, len(labels))
	seen := make(map[time.Weekday]struct{}, len(labels))

	for _, label := range labels {
		d, ok := weekdayLabels[strings.ToLower(strings.TrimSpace(label))]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownWeekday, label)
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		result = append(result, d)
	}

	return result, nil
}

// ResolveDates переводит дни недели в конкретные даты начиная с baseDate.
// Смещение всегда вперед: (target - base + 7) % 7 дней, тот же день недели дает baseDate.
// Без дней недели возвращается только baseDate. Порядок соответствует порядку weekdays.
func ResolveDates(baseDate time.Time, weekdays []time.Weekday) []time.Time {
	base := domain.DateOnly(baseDate)
	if len(weekdays) == 0 {
		return []time.Time{base}
	}

	baseIndex := int(base.Weekday())
	dates := make([]time.Time, 0, len(weekdays))
	for _, d := range weekdays {
		offset := (int(d) - baseIndex + 7) % 7
		dates = append(dates, base.AddDate(0, 0, offset))
	}

	return dates
}
