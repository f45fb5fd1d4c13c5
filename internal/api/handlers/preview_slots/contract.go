package preview_slots

import (
	"context"

	previewSlots "github.com/m04kA/SMC-SlotService/internal/usecase/preview_slots"
)

type PreviewSlotsUseCase interface {
	Execute(ctx context.Context, req *previewSlots.Request) (*previewSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
