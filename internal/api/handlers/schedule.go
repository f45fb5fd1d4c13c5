package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/internal/slotgen"
)

// ScheduleRequest тело запросов предпросмотра и генерации.
// Незаданные поля берутся из сохраненного шаблона терапевта.
type ScheduleRequest struct {
	DurationMinutes *int     `json:"durationMinutes,omitempty"`
	AddonMinutes    *int     `json:"addonMinutes,omitempty"`
	GapMinutes      *int     `json:"gapMinutes,omitempty"`
	StartTime       *string  `json:"startTime,omitempty"`
	EndTime         *string  `json:"endTime,omitempty"`
	IncludeAddon    *bool    `json:"includeAddon,omitempty"`
	Weekdays        []string `json:"weekdays,omitempty"`
	BaseDate        *string  `json:"baseDate,omitempty"` // YYYY-MM-DD, по умолчанию сегодня
}

// ToOverrides конвертирует HTTP запрос в параметры генерации
func (r *ScheduleRequest) ToOverrides() (slotgen.Overrides, error) {
	o := slotgen.Overrides{
		DurationMinutes: r.DurationMinutes,
		AddonMinutes:    r.AddonMinutes,
		GapMinutes:      r.GapMinutes,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		IncludeAddon:    r.IncludeAddon,
		Weekdays:        r.Weekdays,
	}

	if r.BaseDate != nil {
		baseDate, err := ParseDate(*r.BaseDate)
		if err != nil {
			return slotgen.Overrides{}, fmt.Errorf("baseDate: %w", err)
		}
		o.BaseDate = &baseDate
	}

	return o, nil
}

// ParseDate разбирает дату YYYY-MM-DD в локальной зоне
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(domain.DateFormat, s, time.Local)
}

// TherapistID извлекает {therapistId} из пути
func TherapistID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["therapistId"], 10, 64)
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("therapistId must be positive: %d", id)
	}
	return id, nil
}
