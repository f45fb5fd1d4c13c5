package generate_slots

import (
	slotsModels "github.com/m04kA/SMC-SlotService/internal/service/slots/models"
	"github.com/m04kA/SMC-SlotService/internal/slotgen"
)

// Request модель запроса генерации
type Request struct {
	TherapistID    int64
	IdempotencyKey string // Пустой - без идемпотентности
	Schedule       slotgen.Overrides
}

// Response результат генерации
type Response struct {
	Outcome  slotgen.Outcome            `json:"outcome"`
	Created  []slotsModels.SlotResponse `json:"created"`
	Ignored  []slotsModels.SlotResponse `json:"ignored"`
	Replayed bool                       `json:"-"`
}

// storedResponse запись в хранилище идемпотентности.
// Fingerprint отпечаток параметров запроса, с которыми ключ был использован впервые.
type storedResponse struct {
	Fingerprint string    `json:"fingerprint"`
	Response    *Response `json:"response"`
}
