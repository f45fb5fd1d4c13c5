package preview_slots

import (
	slotsModels "github.com/m04kA/SMC-SlotService/internal/service/slots/models"
	previewSlots "github.com/m04kA/SMC-SlotService/internal/usecase/preview_slots"
)

// PreviewSlotsResponse HTTP response model
type PreviewSlotsResponse struct {
	Outcome string                     `json:"outcome"`
	Slots   []slotsModels.SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *previewSlots.Response) *PreviewSlotsResponse {
	return &PreviewSlotsResponse{
		Outcome: string(resp.Outcome),
		Slots:   slotsModels.FromDomainSlots(resp.Slots),
	}
}
