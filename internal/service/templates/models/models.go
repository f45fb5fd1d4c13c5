package models

import (
	"time"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

// SaveTemplateRequest запрос на сохранение шаблона, заменяет шаблон целиком
type SaveTemplateRequest struct {
	DurationMinutes int      `json:"durationMinutes"`
	GapMinutes      int      `json:"gapMinutes"`
	AddonMinutes    int      `json:"addonMinutes"`
	IncludeAddon    bool     `json:"includeAddon"`
	StartTime       string   `json:"startTime"`
	EndTime         string   `json:"endTime"`
	Weekdays        []string `json:"weekdays"`
}

// TemplateResponse шаблон расписания терапевта
type TemplateResponse struct {
	ID              int64     `json:"id"`
	TherapistID     int64     `json:"therapistId"`
	DurationMinutes int       `json:"durationMinutes"`
	GapMinutes      int       `json:"gapMinutes"`
	AddonMinutes    int       `json:"addonMinutes"`
	IncludeAddon    bool      `json:"includeAddon"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	Weekdays        []string  `json:"weekdays"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// FromDomainTemplate конвертирует domain модель в DTO
func FromDomainTemplate(t *domain.ScheduleTemplate) *TemplateResponse {
	if t == nil {
		return nil
	}

	weekdays := t.Weekdays
	if weekdays == nil {
		weekdays = []string{}
	}

	return &TemplateResponse{
		ID:              t.ID,
		TherapistID:     t.TherapistID,
		DurationMinutes: t.DurationMinutes,
		GapMinutes:      t.GapMinutes,
		AddonMinutes:    t.AddonMinutes,
		IncludeAddon:    t.IncludeAddon,
		StartTime:       t.StartTime.String(),
		EndTime:         t.EndTime.String(),
		Weekdays:        weekdays,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}
