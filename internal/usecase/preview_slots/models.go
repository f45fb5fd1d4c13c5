package preview_slots

import (
	"github.com/m04kA/SMC-SlotService/internal/domain"
	"github.com/m04kA/SMC-SlotService/internal/slotgen"
)

// Request модель запроса предпросмотра
type Request struct {
	TherapistID int64
	Schedule    slotgen.Overrides
}

// Response слоты, которые будут созданы генерацией. Ничего не сохраняется.
type Response struct {
	Outcome slotgen.Outcome
	Slots   []*domain.Slot
}
