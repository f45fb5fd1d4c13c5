package slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SlotService/internal/domain"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	InsertIfAbsent(ctx context.Context, slot *domain.Slot) (bool, error)
	ListByTherapistAndDate(ctx context.Context, therapistID int64, date time.Time) ([]*domain.Slot, error)
	ListByTherapistAndRange(ctx context.Context, therapistID int64, from, to time.Time) ([]*domain.Slot, error)
}

// TxManager менеджер транзакций
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счетчики сохраненных слотов
type Metrics interface {
	ObserveSlotsPersisted(created, ignored int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
