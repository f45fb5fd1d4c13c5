package templates

import (
	"context"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/internal/integrations/therapistservice"
)

// TemplateRepository интерфейс репозитория шаблонов расписания
type TemplateRepository interface {
	Upsert(ctx context.Context, tpl *domain.ScheduleTemplate) (*domain.ScheduleTemplate, error)
	GetByTherapistID(ctx context.Context, therapistID int64) (*domain.ScheduleTemplate, error)
}

// TherapistClient интерфейс клиента справочника терапевтов
type TherapistClient interface {
	GetTherapistWithGracefulDegradation(ctx context.Context, therapistID int64) (*therapistservice.Therapist, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
