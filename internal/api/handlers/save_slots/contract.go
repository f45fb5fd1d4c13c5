package save_slots

import (
	"context"

	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/internal/service/slots/models"
)

type SlotService interface {
	SaveBatch(ctx context.Context, therapistID int64, batch []*domain.Slot) (*models.SaveSlotsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
