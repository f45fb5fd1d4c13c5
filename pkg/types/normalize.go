package types

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var meridiemRe = regexp.MustCompile(`(?i)^(.*?)\s*(am|pm)$`)

// Normalize приводит время, введенное в свободной форме, к каноническому HH:MM.
//
// Поддерживаемые формы:
//   - "14:30", "9:05"          24-часовой формат
//   - "9am", "12:30 PM"        12-часовой формат, суффикс без учета регистра
//   - "930", "0930"            компактная запись H[H]MM
//   - "9.30"                   точка как разделитель
//
// Для pm и часа < 12 прибавляется 12, для am и часа 12 час становится 0.
// Диапазоны проверяются после этой коррекции.
func Normalize(raw string) (TimeString, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("%w: empty value", ErrInvalidTimeFormat)
	}

	meridiem := ""
	if m := meridiemRe.FindStringSubmatch(s); m != nil {
		s = strings.TrimSpace(m[1])
		meridiem = strings.ToLower(m[2])
	}

	hourPart, minutePart := splitClock(s)
	// Только цифры: знаки и лишние разряды Atoi принял бы молча
	if !isClockPart(hourPart) || !isClockPart(minutePart) {
		return "", fmt.Errorf("%w: %q: expected 1-2 digit hour and minute", ErrInvalidTimeFormat, raw)
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return "", fmt.Errorf("%w: %q: bad hour", ErrInvalidTimeFormat, raw)
	}
	minute, err := strconv.Atoi(minutePart)
	if err != nil {
		return "", fmt.Errorf("%w: %q: bad minute", ErrInvalidTimeFormat, raw)
	}
	if minute < 0 || minute > 59 {
		return "", fmt.Errorf("%w: %q: minute out of range", ErrInvalidTimeFormat, raw)
	}

	switch {
	case meridiem == "pm" && hour < 12:
		hour += 12
	case meridiem == "am" && hour == 12:
		hour = 0
	}

	if hour < 0 || hour > 23 {
		return "", fmt.Errorf("%w: %q: hour out of range", ErrInvalidTimeFormat, raw)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", hour, minute)), nil
}

// splitClock делит строку на часы и минуты.
// Без разделителя: 3-4 цифры читаются как H[H]MM, иначе вся строка считается часом.
func splitClock(s string) (string, string) {
	if i := strings.IndexAny(s, ":."); i >= 0 {
		return s[:i], s[i+1:]
	}
	if (len(s) == 3 || len(s) == 4) && isDigits(s) {
		return s[:len(s)-2], s[len(s)-2:]
	}
	return s, "0"
}

func isClockPart(s string) bool {
	return len(s) >= 1 && len(s) <= 2 && isDigits(s)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
