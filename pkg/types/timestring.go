package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	timeLayout    = "15:04"
	MinutesPerDay = 24 * 60
)

var (
	// ErrInvalidTimeFormat возвращается, когда строка не является временем HH:MM
	ErrInvalidTimeFormat = errors.New("invalid time string format")

	// ErrTimeOverflow возвращается, когда результат арифметики выходит за пределы суток
	ErrTimeOverflow = errors.New("time is out of day bounds")
)

// TimeString время суток в каноническом формате HH:MM (24 часа, с ведущими нулями).
// Благодаря фиксированному формату лексикографическое сравнение совпадает с хронологическим.
type TimeString string

// NewTimeString создает TimeString из time.Time (берутся только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString строго парсит строку формата HH:MM
func NewTimeStringFromString(s string) (TimeString, error) {
	t := TimeString(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// NewTimeStringFromMinutes создает TimeString из количества минут от начала суток
func NewTimeStringFromMinutes(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= MinutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOverflow, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что значение имеет формат HH:MM
func (t TimeString) Validate() error {
	s := string(t)
	if len(s) != 5 || s[2] != ':' {
		return ErrInvalidTimeFormat
	}
	hour, err := strconv.Atoi(s[:2])
	if err != nil || hour < 0 || hour > 23 {
		return ErrInvalidTimeFormat
	}
	minute, err := strconv.Atoi(s[3:])
	if err != nil || minute < 0 || minute > 59 {
		return ErrInvalidTimeFormat
	}
	return nil
}

// Minutes возвращает количество минут от начала суток.
// Для невалидного значения возвращает -1.
func (t TimeString) Minutes() int {
	if t.Validate() != nil {
		return -1
	}
	s := string(t)
	hour, _ := strconv.Atoi(s[:2])
	minute, _ := strconv.Atoi(s[3:])
	return hour*60 + minute
}

// AddMinutes прибавляет минуты. Возвращает ErrTimeOverflow, если результат выходит за пределы суток.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	base := t.Minutes()
	if base < 0 {
		return "", ErrInvalidTimeFormat
	}
	return NewTimeStringFromMinutes(base + minutes)
}

// AddMinutesWrapped прибавляет минуты по модулю суток (23:30 + 60 = 00:30)
func (t TimeString) AddMinutesWrapped(minutes int) (TimeString, error) {
	base := t.Minutes()
	if base < 0 {
		return "", ErrInvalidTimeFormat
	}
	total := (base + minutes) % MinutesPerDay
	if total < 0 {
		total += MinutesPerDay
	}
	return NewTimeStringFromMinutes(total)
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Minutes() < other.Minutes()
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return t.Minutes() > other.Minutes()
}

// Scan реализует sql.Scanner.
// Postgres отдает TIME как "HH:MM:SS", секунды отбрасываются.
func (t *TimeString) Scan(src interface{}) error {
	var s string
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeFormat, src)
	}

	s = strings.TrimSpace(s)
	if len(s) > 5 {
		s = s[:5]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}
