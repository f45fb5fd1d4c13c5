package update_schedule_template

import (
	"github.com/m04kA/SMC-SlotService/internal/service/templates/models"
)

// UpdateScheduleTemplateRequest HTTP request model, заменяет шаблон целиком
type UpdateScheduleTemplateRequest struct {
	DurationMinutes int      `json:"durationMinutes"`
	GapMinutes      int      `json:"gapMinutes"`
	AddonMinutes    int      `json:"addonMinutes"`
	IncludeAddon    bool     `json:"includeAddon"`
	StartTime       string   `json:"startTime"`
	EndTime         string   `json:"endTime"`
	Weekdays        []string `json:"weekdays"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateScheduleTemplateRequest) ToServiceRequest() *models.SaveTemplateRequest {
	return &models.SaveTemplateRequest{
		DurationMinutes: r.DurationMinutes,
		GapMinutes:      r.GapMinutes,
		AddonMinutes:    r.AddonMinutes,
		IncludeAddon:    r.IncludeAddon,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		Weekdays:        r.Weekdays,
	}
}
