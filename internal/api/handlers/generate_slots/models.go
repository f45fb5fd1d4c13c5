package generate_slots

import (
	slotsModels "github.com/m04kA/SMC-SlotService/internal/service/slots/models"
	generateSlots "github.com/m04kA/SMC-SlotService/internal/usecase/generate_slots"
)

// IdempotencyKeyHeader заголовок ключа идемпотентности генерации
const IdempotencyKeyHeader = "Idempotency-Key"

// ReplayedHeader выставляется, если ответ взят из хранилища идемпотентности
const ReplayedHeader = "Idempotent-Replayed"

// GenerateSlotsResponse HTTP response model
type GenerateSlotsResponse struct {
	Outcome string                     `json:"outcome"`
	Created []slotsModels.SlotResponse `json:"created"`
	Ignored []slotsModels.SlotResponse `json:"ignored"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateSlots.Response) *GenerateSlotsResponse {
	created, ignored := resp.Created, resp.Ignored
	if created == nil {
		created = []slotsModels.SlotResponse{}
	}
	if ignored == nil {
		ignored = []slotsModels.SlotResponse{}
	}

	return &GenerateSlotsResponse{
		Outcome: string(resp.Outcome),
		Created: created,
		Ignored: ignored,
	}
}
