package preview_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

// TemplateRepository интерфейс репозитория шаблонов расписания
type TemplateRepository interface {
	GetByTherapistID(ctx context.Context, therapistID int64) (*domain.ScheduleTemplate, error)
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
