package generate_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/internal/integrations/therapistservice"
	slotsModels "github.com/m04kA/SMC-SlotService/internal/service/slots/models"
)

// TemplateRepository интерфейс репозитория шаблонов расписания
type TemplateRepository interface {
	GetByTherapistID(ctx context.Context, therapistID int64) (*domain.ScheduleTemplate, error)
}

// SlotService сохранение пачки слотов по принципу insert-if-absent
type SlotService interface {
	SaveBatch(ctx context.Context, therapistID int64, batch []*domain.Slot) (*slotsModels.SaveSlotsResponse, error)
}

// TherapistClient интерфейс клиента справочника терапевтов
type TherapistClient interface {
	GetTherapistWithGracefulDegradation(ctx context.Context, therapistID int64) (*therapistservice.Therapist, error)
}

// IdempotencyStore хранилище ответов по ключу идемпотентности
type IdempotencyStore interface {
	Load(ctx context.Context, therapistID int64, idempotencyKey string, dst interface{}) (bool, error)
	Save(ctx context.Context, therapistID int64, idempotencyKey string, value interface{}) error
}

// Metrics счетчик исходов генерации
type Metrics interface {
	ObserveGeneration(outcome string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
